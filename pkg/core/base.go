package core

import (
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
)

// Behavior is the kind-specific part of a node. Types implementing it embed
// *Base, which provides the rest of ports.Node.
type Behavior interface {
	ports.Node
	// Execute computes the response of one tick. It is only called while
	// the node is running.
	Execute(entity, world any) (domain.Response, error)
}

// AttributeValidator is implemented by kinds with attributes to check on
// construction and on every start.
type AttributeValidator interface {
	ValidateAttributes() error
}

// Resetter is implemented by kinds carrying per-run state cleared on restart.
type Resetter interface {
	Reset()
}

// MetricDuration is the metric under which the duration of a tick is recorded, in seconds.
const MetricDuration = "duration"

// Base implements the lifecycle state machine shared by every node kind.
type Base struct {
	id       string
	kind     string
	state    domain.LifecycleState
	response domain.Response

	recorder  ports.Recorder
	recorders ports.RecorderFactory
	logger    *slog.Logger
	idGen     func() string
	now       func() time.Time
	startTime time.Time
	stopTime  time.Time

	self Behavior
}

// NewBase returns the Base of a node of the given kind. self is the node
// embedding the returned Base. Callers validate the finished node with
// Validate before handing it out.
func NewBase(kind string, self Behavior, opts ...Option) *Base {
	b := &Base{
		kind:     kind,
		state:    domain.StateReady,
		response: domain.ResponseUnknown,
		logger:   discardLogger,
		idGen:    defaultIDGenerator,
		now:      time.Now,
		self:     self,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.id == "" {
		b.id = b.idGen()
	}
	if b.recorder == nil && b.recorders != nil {
		b.recorder = b.recorders(b.id, b.kind)
	}
	return b
}

// ID implements ports.Node.
func (b *Base) ID() string { return b.id }

// Kind implements ports.Node.
func (b *Base) Kind() string { return b.kind }

// State implements ports.Node.
func (b *Base) State() domain.LifecycleState { return b.state }

// Response implements ports.Node.
func (b *Base) Response() domain.Response { return b.response }

// Recorder returns the attached recorder, or nil.
func (b *Base) Recorder() ports.Recorder { return b.recorder }

// Logger returns the logger of the node.
func (b *Base) Logger() *slog.Logger { return b.logger }

// Now reads the clock of the node.
func (b *Base) Now() time.Time { return b.now() }

// StartTime is the time the most recent tick started. It is only set when a
// recorder is attached.
func (b *Base) StartTime() time.Time { return b.startTime }

// StopTime is the time the most recent tick finished. It is only set when a
// recorder is attached.
func (b *Base) StopTime() time.Time { return b.stopTime }

func (b *Base) Busy() bool { return b.response == domain.ResponseBusy }
func (b *Base) Failed() bool { return b.response == domain.ResponseFailed }
func (b *Base) Succeeded() bool { return b.response == domain.ResponseSucceeded }

func (b *Base) Ready() bool { return b.state == domain.StateReady }
func (b *Base) Running() bool { return b.state == domain.StateRunning }
func (b *Base) Paused() bool { return b.state == domain.StatePaused }
func (b *Base) Stopped() bool { return b.state == domain.StateStopped }

// CanStop reports whether a stop event is currently valid.
func (b *Base) CanStop() bool {
	return b.state == domain.StateRunning || b.state == domain.StatePaused
}

// LogValue implements slog.LogValuer so node attributes are only rendered
// when the log level is enabled.
func (b *Base) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", b.id),
		slog.String("kind", b.kind),
		slog.String("state", string(b.state)),
		slog.String("response", string(b.response)),
	)
}

// Validate checks the identifier and the attributes of the kind.
func (b *Base) Validate() error {
	if b.id == "" || strings.ContainsFunc(b.id, isSpace) {
		return domain.InvalidArgument("invalid identifier")
	}
	if v, ok := b.self.(AttributeValidator); ok {
		return v.ValidateAttributes()
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

// UpdateResponse sets the response of the node. Only tick outcomes are accepted.
func (b *Base) UpdateResponse(r domain.Response) error {
	if !r.Valid() {
		return domain.InvalidArgument("invalid response: %s", r)
	}
	b.response = r
	return nil
}

// Start moves the node to running. Starting a stopped node resets it first.
// Attributes are validated before the state changes. Children are started
// once the node itself is running.
func (b *Base) Start() error {
	to, err := domain.Transition(b.state, domain.EventStart)
	if err != nil {
		return err
	}

	restart := b.state == domain.StateStopped
	if restart {
		b.logger.Debug("Restarting", "node", b)
		b.reset()
	} else {
		b.logger.Debug("Starting", "node", b)
	}

	if err := b.Validate(); err != nil {
		return err
	}
	b.state = to

	if err := b.forEachChild(startChild); err != nil {
		return err
	}

	if restart {
		b.logger.Debug("Restarted", "node", b)
	} else {
		b.logger.Debug("Started", "node", b)
	}
	return nil
}

// Stop moves the node to stopped after stopping its children.
func (b *Base) Stop() error {
	to, err := domain.Transition(b.state, domain.EventStop)
	if err != nil {
		return err
	}
	b.logger.Debug("Stopping", "node", b)

	if err := b.forEachChild(stopChild); err != nil {
		return err
	}
	b.state = to

	b.logger.Debug("Stopped", "node", b)
	return nil
}

// Pause moves the node to paused, then pauses its children.
func (b *Base) Pause() error {
	to, err := domain.Transition(b.state, domain.EventPause)
	if err != nil {
		return err
	}
	b.logger.Debug("Pausing", "node", b)

	b.state = to
	if err := b.forEachChild(pauseChild); err != nil {
		return err
	}

	b.logger.Debug("Paused", "node", b)
	return nil
}

// Resume moves the node back to running, then resumes its children.
func (b *Base) Resume() error {
	to, err := domain.Transition(b.state, domain.EventResume)
	if err != nil {
		return err
	}
	b.logger.Debug("Resuming", "node", b)

	b.state = to
	if err := b.forEachChild(resumeChild); err != nil {
		return err
	}

	b.logger.Debug("Resumed", "node", b)
	return nil
}

// Process ticks the node once. It returns domain.ErrInvalidState unless the
// node is running. Errors from Execute are returned unchanged and leave the
// response untouched.
func (b *Base) Process(entity, world any) (ports.Node, error) {
	if b.state != domain.StateRunning {
		return b.self, domain.InvalidState("cannot process %s node %s when %s", b.kind, b.id, b.state)
	}

	b.startRecording()
	resp, err := b.self.Execute(entity, world)
	b.stopRecording()
	if err != nil {
		return b.self, err
	}

	if err := b.UpdateResponse(resp); err != nil {
		return b.self, err
	}
	return b.self, nil
}

func (b *Base) reset() {
	b.response = domain.ResponseUnknown
	b.startTime = time.Time{}
	b.stopTime = time.Time{}
	if r, ok := b.self.(Resetter); ok {
		r.Reset()
	}
}

func (b *Base) startRecording() {
	if b.recorder == nil {
		return
	}
	b.startTime = b.now()
	b.stopTime = time.Time{}
}

func (b *Base) stopRecording() {
	if b.recorder == nil {
		return
	}
	b.stopTime = b.now()
	b.recorder.Record(MetricDuration, b.stopTime.Sub(b.startTime).Seconds())
}

func (b *Base) forEachChild(fn func(ports.Node) error) error {
	parent, ok := b.self.(ports.Parent)
	if !ok {
		return nil
	}
	for _, child := range parent.Children() {
		if IsNil(child) {
			continue
		}
		if err := fn(child); err != nil {
			return err
		}
	}
	return nil
}

// startChild brings a child to running from any state. A running child is
// left alone.
func startChild(n ports.Node) error {
	switch n.State() {
	case domain.StateReady, domain.StateStopped:
		return n.Start()
	case domain.StatePaused:
		return n.Resume()
	}
	return nil
}

func stopChild(n ports.Node) error {
	switch n.State() {
	case domain.StateRunning, domain.StatePaused:
		return n.Stop()
	}
	return nil
}

func pauseChild(n ports.Node) error {
	if n.State() == domain.StateRunning {
		return n.Pause()
	}
	return nil
}

func resumeChild(n ports.Node) error {
	if n.State() == domain.StatePaused {
		return n.Resume()
	}
	return nil
}
