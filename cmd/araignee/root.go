package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/araignee/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "araignee",
	Short: "Araignee is a behavior-tree engine",
	Long: `Araignee loads behavior trees from YAML, JSON or TOML definitions and ticks them,
printing responses, exposing them over HTTP and recording tick metrics.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error). Logs are off when empty")
}

// newLogger builds the logger selected by --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	if raw == "" {
		return logging.NewNop(), nil
	}
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}
