package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/araignee"
	"github.com/aretw0/araignee/internal/cli"
	"github.com/aretw0/araignee/internal/presentation/tui"
	httpAdapter "github.com/aretw0/araignee/pkg/adapters/http"
	promAdapter "github.com/aretw0/araignee/pkg/adapters/prometheus"
	redisAdapter "github.com/aretw0/araignee/pkg/adapters/redis"
	"github.com/aretw0/araignee/pkg/loader"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/recorder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type runFlags struct {
	ticks    int
	interval time.Duration
	cont     bool
	entity   string
	world    string
	serve    string
	redis    string
	color    string
	verbose  bool
}

var flags runFlags

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Tick a behavior tree",
	Long: `Loads the tree definition and ticks its root until it succeeds or fails,
--ticks is reached or the process is interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		return runTree(cmd, args[0], flags, logger)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&flags.ticks, "ticks", "n", 100, "Maximum number of ticks (0 for no bound)")
	runCmd.Flags().DurationVar(&flags.interval, "interval", 0, "Pause between ticks")
	runCmd.Flags().BoolVar(&flags.cont, "continue", false, "Keep ticking after the root succeeded")
	runCmd.Flags().StringVar(&flags.entity, "entity", "", "Entity data file (YAML, JSON or TOML)")
	runCmd.Flags().StringVar(&flags.world, "world", "", "World data file (YAML, JSON or TOML)")
	runCmd.Flags().StringVar(&flags.serve, "serve", "", "Address of the HTTP introspection server (e.g. :8080)")
	runCmd.Flags().StringVar(&flags.redis, "redis", "", "Address of a Redis server receiving tick metrics")
	runCmd.Flags().StringVar(&flags.color, "color", "auto", "Colored output (auto, always, never)")
	runCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print the nodes changed by every tick")
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return false, fmt.Errorf("invalid --color value %q", mode)
}

func runTree(cmd *cobra.Command, path string, f runFlags, logger *slog.Logger) error {
	color, err := useColor(f.color)
	if err != nil {
		return err
	}
	printer := tui.NewPrinter(cmd.OutOrStdout(), color)

	reg := prometheus.NewRegistry()
	collector, err := promAdapter.New(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	factories := []ports.RecorderFactory{collector.For}

	var flushers []cli.Flusher
	if f.redis != "" {
		sink := redisAdapter.New(f.redis, "", 0)
		defer func() {
			if err := sink.Close(); err != nil {
				logger.Warn("Failed to close redis client", "error", err)
			}
		}()
		factories = append(factories, sink.For)
		flushers = append(flushers, sink)
	}

	l := loader.New(loader.WithLogger(logger), loader.WithRecorders(recorder.Combine(factories...)))
	tree, err := araignee.LoadFile(path, araignee.WithLoader(l), araignee.WithLogger(logger))
	if err != nil {
		return err
	}

	entity, err := cli.LoadData(f.entity)
	if err != nil {
		return fmt.Errorf("error reading --entity: %w", err)
	}
	world, err := cli.LoadData(f.world)
	if err != nil {
		return fmt.Errorf("error reading --world: %w", err)
	}

	sigCtx := cli.NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	var srv *http.Server
	serverErrors := make(chan error, 1)
	if f.serve != "" {
		srv = &http.Server{
			Addr: f.serve,
			Handler: httpAdapter.NewHandler(tree,
				httpAdapter.WithName(tree.Name),
				httpAdapter.WithGatherer(reg),
				httpAdapter.WithLogger(logger),
			),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Starting introspection server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				serverErrors <- err
			}
		}()
	}

	if color {
		tui.PrintBanner(cmd.OutOrStdout(), printer.Profile())
	}

	report, runErr := cli.Run(sigCtx, tree, cli.RunOptions{
		MaxTicks: f.ticks,
		Interval: f.interval,
		Continue: f.cont,
		Entity:   entity,
		World:    world,
		Diffs:    f.verbose,
		OnTick: func(r cli.TickResult) {
			printer.Tick(r.Tick, r.Response)
			printer.Diffs(r.Diffs)
		},
		Flushers: flushers,
		OnFlushError: func(err error) {
			logger.Warn("Failed to flush metrics", "error", err)
		},
	})
	printer.Summary(report.Ticks, report.Response, report.Elapsed)
	if report.Interrupted {
		fmt.Fprintf(cmd.OutOrStdout(), ">>> Interrupted (%v) after %d ticks.\n", sigCtx.Signal(), report.Ticks)
	}

	if srv != nil {
		if runErr == nil && !report.Interrupted {
			fmt.Fprintf(cmd.OutOrStdout(), ">>> Serving on %s, press Ctrl+C to stop.\n", srv.Addr)
			select {
			case <-sigCtx.Done():
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "error", err)
			_ = srv.Close()
		}
	}

	return runErr
}
