package main

import (
	"fmt"

	"github.com/aretw0/araignee/pkg/loader"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a tree definition",
	Long:  `Decodes and builds the definition without ticking it, reporting every problem found.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		def, err := loader.New(loader.WithLogger(logger)).LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Tree %q is valid! ✅\n", def.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
