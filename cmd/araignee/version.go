package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/araignee"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of araignee",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "araignee version %s\n", strings.TrimSpace(araignee.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
