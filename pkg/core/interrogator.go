package core

import "github.com/aretw0/araignee/pkg/domain"

// Interrogator ticks its child and adopts its response. It is the condition
// side of a Guard.
type Interrogator struct {
	*Decorator
}

// NewInterrogator builds an Interrogator.
func NewInterrogator(cfg DecoratorConfig, opts ...Option) (*Interrogator, error) {
	n := &Interrogator{}
	n.Decorator = NewDecorator(KindInterrogator, n, cfg.Child, opts...)
	return finish(n)
}

// Execute implements Behavior.
func (n *Interrogator) Execute(entity, world any) (domain.Response, error) {
	child, err := n.Child().Process(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	return child.Response(), nil
}
