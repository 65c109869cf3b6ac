package main

import (
	"fmt"

	"github.com/aretw0/araignee/internal/presentation/graph"
	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/loader"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the tree visualization",
	Long:  `Loads the definition and outputs a Mermaid diagram (graph TD) of the tree.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loader.New().LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(core.Snapshot(def.Root), nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
