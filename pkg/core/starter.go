package core

import "github.com/aretw0/araignee/pkg/domain"

// Starter brings its child back to running before every tick: a stopped or
// ready child is started and a paused child is resumed.
type Starter struct {
	*Decorator
}

// NewStarter builds a Starter.
func NewStarter(cfg DecoratorConfig, opts ...Option) (*Starter, error) {
	n := &Starter{}
	n.Decorator = NewDecorator(KindStarter, n, cfg.Child, opts...)
	return finish(n)
}

// Execute implements Behavior.
func (n *Starter) Execute(entity, world any) (domain.Response, error) {
	if err := startChild(n.Child()); err != nil {
		return domain.ResponseUnknown, err
	}
	child, err := n.Child().Process(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	return child.Response(), nil
}
