package core

import (
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
)

// LimiterConfig holds the attributes of a Limiter.
type LimiterConfig struct {
	Child ports.Node
	// Times is the number of consecutive non-successful ticks allowed.
	Times int
}

// Limiter bounds how many consecutive ticks its child may spend without
// succeeding. Once the bound is reached the limiter fails without ticking the
// child until it is restarted. A success resets the count.
type Limiter struct {
	*Decorator
	times int
	count int
}

// NewLimiter builds a Limiter.
func NewLimiter(cfg LimiterConfig, opts ...Option) (*Limiter, error) {
	n := &Limiter{times: cfg.Times}
	n.Decorator = NewDecorator(KindLimiter, n, cfg.Child, opts...)
	return finish(n)
}

func (n *Limiter) Times() int { return n.times }

// Count returns the number of consecutive non-successful ticks so far.
func (n *Limiter) Count() int { return n.count }

// Exhausted reports whether the bound has been reached.
func (n *Limiter) Exhausted() bool { return n.count >= n.times }

// ValidateAttributes implements AttributeValidator.
func (n *Limiter) ValidateAttributes() error {
	if n.times <= 0 {
		return domain.InvalidArgument("times must be > 0")
	}
	return n.Decorator.ValidateAttributes()
}

// Reset implements Resetter.
func (n *Limiter) Reset() {
	n.count = 0
}

// Execute implements Behavior.
func (n *Limiter) Execute(entity, world any) (domain.Response, error) {
	if n.Exhausted() {
		return domain.ResponseFailed, nil
	}

	child, err := n.Child().Process(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	if child.Response() == domain.ResponseSucceeded {
		n.count = 0
		return domain.ResponseSucceeded, nil
	}

	n.count++
	if n.count == n.times {
		return domain.ResponseFailed, nil
	}
	return child.Response(), nil
}
