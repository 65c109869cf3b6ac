package actions

import (
	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/domain"
)

// TemporaryFailedConfig holds the attributes of a TemporaryFailed.
type TemporaryFailedConfig struct {
	// Times is the number of ticks that fail before the action succeeds.
	Times int
}

// TemporaryFailed fails for a fixed number of ticks, then succeeds. It
// exercises retry policies such as core.Limiter.
type TemporaryFailed struct {
	*core.Base
	times   int
	counter int
}

// NewTemporaryFailed builds a TemporaryFailed.
func NewTemporaryFailed(cfg TemporaryFailedConfig, opts ...core.Option) (*TemporaryFailed, error) {
	n := &TemporaryFailed{times: cfg.Times}
	n.Base = core.NewBase(KindTemporaryFailed, n, opts...)
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *TemporaryFailed) Times() int { return n.times }

// Counter returns the number of ticks processed since the last reset.
func (n *TemporaryFailed) Counter() int { return n.counter }

// ValidateAttributes implements core.AttributeValidator.
func (n *TemporaryFailed) ValidateAttributes() error {
	if n.times < 0 {
		return domain.InvalidArgument("times must be >= 0")
	}
	return nil
}

// Reset implements core.Resetter.
func (n *TemporaryFailed) Reset() {
	n.counter = 0
}

// Execute implements core.Behavior.
func (n *TemporaryFailed) Execute(_, _ any) (domain.Response, error) {
	if n.counter < n.times {
		n.counter++
		return domain.ResponseFailed, nil
	}
	return domain.ResponseSucceeded, nil
}
