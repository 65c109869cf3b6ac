package core

import (
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
)

// DecoratorConfig holds the attributes of single-child decorators.
type DecoratorConfig struct {
	Child ports.Node
}

// Inverter swaps the failed and succeeded responses of its child. Busy is
// passed through.
type Inverter struct {
	*Decorator
}

// NewInverter builds an Inverter.
func NewInverter(cfg DecoratorConfig, opts ...Option) (*Inverter, error) {
	n := &Inverter{}
	n.Decorator = NewDecorator(KindInverter, n, cfg.Child, opts...)
	return finish(n)
}

// Execute implements Behavior.
func (n *Inverter) Execute(entity, world any) (domain.Response, error) {
	child, err := n.Child().Process(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	switch child.Response() {
	case domain.ResponseSucceeded:
		return domain.ResponseFailed, nil
	case domain.ResponseFailed:
		return domain.ResponseSucceeded, nil
	}
	return child.Response(), nil
}
