package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/araignee/pkg/loader"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the node kinds and strategies understood by definitions",
	Run: func(cmd *cobra.Command, args []string) {
		l := loader.New()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "kinds:   %s\n", strings.Join(l.Kinds(), ", "))
		fmt.Fprintf(out, "filters: %s\n", strings.Join(l.Filters(), ", "))
		fmt.Fprintf(out, "sorters: %s\n", strings.Join(l.Sorters(), ", "))
		fmt.Fprintf(out, "pickers: %s\n", strings.Join(l.Pickers(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
