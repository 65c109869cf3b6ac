package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/araignee"
	"github.com/aretw0/araignee/pkg/domain"
)

// Flusher pushes buffered telemetry, such as the Redis recorder sink.
type Flusher interface {
	Flush(ctx context.Context) error
}

// RunOptions contains the configuration of the tick loop.
type RunOptions struct {
	// MaxTicks bounds the loop. Zero or less means no bound.
	MaxTicks int
	// Interval is the pause between two ticks.
	Interval time.Duration
	// Continue keeps ticking after StopWhen reported true.
	Continue bool
	// StopWhen decides which root responses end the loop. Nil stops once the
	// root succeeded, so a failing root is ticked again.
	StopWhen func(domain.Response) bool
	Entity   any
	World    any
	// Diffs computes the nodes changed by every tick.
	Diffs bool
	// OnTick is called after every successful tick.
	OnTick func(TickResult)
	// Flushers are flushed after every tick. Flush errors are logged by the
	// caller through OnFlushError and do not stop the loop.
	Flushers     []Flusher
	OnFlushError func(error)
}

// StopOnSuccess is the default stop policy of Run.
func StopOnSuccess(r domain.Response) bool { return r == domain.ResponseSucceeded }

// StopOnTerminal ends the loop on the first failed or succeeded root.
func StopOnTerminal(r domain.Response) bool { return r.Terminal() }

// TickResult describes one completed tick.
type TickResult struct {
	Tick     int
	Response domain.Response
	Diffs    []domain.NodeDiff
}

// Report is the outcome of Run.
type Report struct {
	Ticks       int
	Response    domain.Response
	Elapsed     time.Duration
	Interrupted bool
}

// Run ticks tree until its root succeeded (or StopWhen reports true), MaxTicks
// is reached or ctx is cancelled. A ready or stopped tree is started first. Cancellation is
// reported through Report.Interrupted, not as an error.
func Run(ctx context.Context, tree *araignee.Tree, opts RunOptions) (Report, error) {
	began := time.Now()
	report := Report{Response: tree.Response()}

	if state := tree.State(); state.Can(domain.EventStart) {
		if err := tree.Start(); err != nil {
			return report, fmt.Errorf("failed to start tree: %w", err)
		}
	}

	stop := opts.StopWhen
	if stop == nil {
		stop = StopOnSuccess
	}

	var ticks <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	var previous *domain.Snapshot
	if opts.Diffs {
		snap := tree.Snapshot()
		previous = &snap
	}

	for opts.MaxTicks <= 0 || report.Ticks < opts.MaxTicks {
		if ctx.Err() != nil {
			report.Interrupted = true
			break
		}

		resp, err := tree.Tick(opts.Entity, opts.World)
		if err != nil {
			report.Elapsed = time.Since(began)
			return report, fmt.Errorf("tick %d: %w", report.Ticks+1, err)
		}
		report.Ticks++
		report.Response = resp

		result := TickResult{Tick: report.Ticks, Response: resp}
		if opts.Diffs {
			snap := tree.Snapshot()
			result.Diffs = domain.Diff(previous, &snap)
			previous = &snap
		}
		if opts.OnTick != nil {
			opts.OnTick(result)
		}

		for _, f := range opts.Flushers {
			if err := f.Flush(ctx); err != nil && opts.OnFlushError != nil {
				opts.OnFlushError(err)
			}
		}

		if stop(resp) && !opts.Continue {
			break
		}
		if opts.MaxTicks > 0 && report.Ticks >= opts.MaxTicks {
			break
		}

		if ticks != nil {
			select {
			case <-ctx.Done():
				report.Interrupted = true
				report.Elapsed = time.Since(began)
				return report, nil
			case <-ticks:
			}
		}
	}

	report.Elapsed = time.Since(began)
	return report, nil
}
