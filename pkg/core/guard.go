package core

import (
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
)

// GuardConfig holds the attributes of a Guard.
type GuardConfig struct {
	Interrogator ports.Node
	Child        ports.Node
}

// Guard ticks its child only when the interrogator succeeded, and fails
// otherwise.
type Guard struct {
	*Decorator
	interrogator ports.Node
}

// NewGuard builds a Guard.
func NewGuard(cfg GuardConfig, opts ...Option) (*Guard, error) {
	n := &Guard{interrogator: cfg.Interrogator}
	n.Decorator = NewDecorator(KindGuard, n, cfg.Child, opts...)
	return finish(n)
}

// Interrogator returns the condition node.
func (n *Guard) Interrogator() ports.Node { return n.interrogator }

// Children implements ports.Parent. The interrogator comes first.
func (n *Guard) Children() []ports.Node {
	var children []ports.Node
	if !IsNil(n.interrogator) {
		children = append(children, n.interrogator)
	}
	return append(children, n.Decorator.Children()...)
}

// ValidateAttributes implements AttributeValidator.
func (n *Guard) ValidateAttributes() error {
	if IsNil(n.interrogator) {
		return domain.InvalidArgument("interrogator node nil")
	}
	return n.Decorator.ValidateAttributes()
}

// Execute implements Behavior.
func (n *Guard) Execute(entity, world any) (domain.Response, error) {
	cond, err := n.interrogator.Process(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	if cond.Response() != domain.ResponseSucceeded {
		return domain.ResponseFailed, nil
	}

	child, err := n.Child().Process(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	return child.Response(), nil
}
