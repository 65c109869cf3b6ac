package core

import (
	"time"

	"github.com/aretw0/araignee/pkg/domain"
)

// WaitConfig holds the attributes of a Wait.
type WaitConfig struct {
	Delay time.Duration
}

// Wait is busy until its delay has elapsed, then succeeds. The delay is
// measured from construction, and from every restart.
type Wait struct {
	*Base
	delay time.Duration
	since time.Time
}

// NewWait builds a Wait.
func NewWait(cfg WaitConfig, opts ...Option) (*Wait, error) {
	n := &Wait{delay: cfg.Delay}
	n.Base = NewBase(KindWait, n, opts...)
	n.since = n.Now()
	return finish(n)
}

func (n *Wait) Delay() time.Duration { return n.delay }

// Since returns the time the delay is measured from.
func (n *Wait) Since() time.Time { return n.since }

// ValidateAttributes implements AttributeValidator.
func (n *Wait) ValidateAttributes() error {
	if n.delay <= 0 {
		return domain.InvalidArgument("delay must be > 0")
	}
	return nil
}

// Reset implements Resetter.
func (n *Wait) Reset() {
	n.since = n.Now()
}

// Execute implements Behavior.
func (n *Wait) Execute(_, _ any) (domain.Response, error) {
	if n.Now().Sub(n.since) > n.delay {
		return domain.ResponseSucceeded, nil
	}
	return domain.ResponseBusy, nil
}
