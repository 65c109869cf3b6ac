package core

import (
	"log/slog"
	"time"

	"github.com/aretw0/araignee/pkg/ports"
	"github.com/google/uuid"
)

// Option configures the Base of a node.
type Option func(*Base)

// WithID sets the identifier of the node. Without it one is generated.
func WithID(id string) Option {
	return func(b *Base) {
		b.id = id
	}
}

// WithLogger sets the logger receiving lifecycle events at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRecorder attaches a telemetry recorder. The node does not own it.
func WithRecorder(r ports.Recorder) Option {
	return func(b *Base) {
		b.recorder = r
	}
}

// WithRecorderFactory attaches the recorder f returns for the identifier and
// kind of the node, unless a recorder is already set.
func WithRecorderFactory(f ports.RecorderFactory) Option {
	return func(b *Base) {
		b.recorders = f
	}
}

// WithIDGenerator sets the function used to generate identifiers.
func WithIDGenerator(gen func() string) Option {
	return func(b *Base) {
		if gen != nil {
			b.idGen = gen
		}
	}
}

// WithClock sets the time source used for recording and by Wait.
func WithClock(now func() time.Time) Option {
	return func(b *Base) {
		if now != nil {
			b.now = now
		}
	}
}

func defaultIDGenerator() string {
	return uuid.NewString()
}

var discardLogger = slog.New(slog.DiscardHandler)
