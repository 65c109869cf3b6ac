package araignee

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/loader"
	"github.com/aretw0/araignee/pkg/ports"
)

// Tree is the high-level entry point for the araignee library.
// It owns a root node and serializes every operation on it, so a driver may
// tick while other goroutines take snapshots or fire lifecycle events.
type Tree struct {
	mu     sync.Mutex
	root   ports.Node
	ticks  int
	loader *loader.Loader
	logger *slog.Logger
	Name   string
}

// Option defines a functional option for configuring the Tree.
type Option func(*Tree)

// WithLogger sets a custom structured logger for the tree.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithName sets the name used in logs and snapshots.
func WithName(name string) Option {
	return func(t *Tree) {
		t.Name = name
	}
}

// WithLoader sets the loader used by LoadFile. By default a loader with the
// built-in kinds and the tree logger is used.
func WithLoader(l *loader.Loader) Option {
	return func(t *Tree) {
		t.loader = l
	}
}

// New wraps root in a Tree. The root is not started.
func New(root ports.Node, opts ...Option) (*Tree, error) {
	t := newTree(opts...)
	if core.IsNil(root) {
		return nil, domain.InvalidArgument("root node nil")
	}
	t.root = root
	return t, nil
}

// LoadFile builds a Tree from a definition file (YAML, JSON or TOML).
// Without WithName, the name of the definition is used.
func LoadFile(path string, opts ...Option) (*Tree, error) {
	t := newTree(opts...)
	if t.loader == nil {
		t.loader = loader.New(loader.WithLogger(t.logger))
	}

	def, err := t.loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	t.root = def.Root
	if t.Name == "" {
		t.Name = def.Name
		t.logger = t.logger.With("tree", t.Name)
	}
	return t, nil
}

func newTree(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	if t.Name != "" {
		t.logger = t.logger.With("tree", t.Name)
	}
	return t
}

// Root returns the root node.
func (t *Tree) Root() ports.Node { return t.root }

// Ticks returns how many ticks completed without error.
func (t *Tree) Ticks() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// State returns the lifecycle state of the root.
func (t *Tree) State() domain.LifecycleState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.State()
}

// Response returns the last response of the root.
func (t *Tree) Response() domain.Response {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.Response()
}

// Start starts the root and, through it, the whole tree.
func (t *Tree) Start() error { return t.Fire(domain.EventStart) }

// Stop stops the tree.
func (t *Tree) Stop() error { return t.Fire(domain.EventStop) }

// Pause pauses the tree.
func (t *Tree) Pause() error { return t.Fire(domain.EventPause) }

// Resume resumes a paused tree.
func (t *Tree) Resume() error { return t.Fire(domain.EventResume) }

// Fire applies a lifecycle event to the root.
func (t *Tree) Fire(ev domain.Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	switch ev {
	case domain.EventStart:
		err = t.root.Start()
	case domain.EventStop:
		err = t.root.Stop()
	case domain.EventPause:
		err = t.root.Pause()
	case domain.EventResume:
		err = t.root.Resume()
	default:
		return domain.InvalidArgument("invalid event: %s", ev)
	}
	if err != nil {
		return err
	}
	t.logger.Info("Tree event", "event", ev, "state", t.root.State())
	return nil
}

// Tick processes the root once and returns its response.
func (t *Tree) Tick(entity, world any) (domain.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.root.Process(entity, world); err != nil {
		t.logger.Error("Tick failed", "tick", t.ticks+1, "error", err)
		return domain.ResponseUnknown, err
	}
	t.ticks++
	t.logger.Debug("Ticked", "tick", t.ticks, "response", t.root.Response())
	return t.root.Response(), nil
}

// Snapshot captures the current state of every node.
func (t *Tree) Snapshot() domain.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.Snapshot(t.root)
}
