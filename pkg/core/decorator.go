package core

import "github.com/aretw0/araignee/pkg/ports"

// Decorator is the base of nodes owning exactly one child.
type Decorator struct {
	*Base
	child ports.Node
}

// NewDecorator returns the Decorator of a node of the given kind.
func NewDecorator(kind string, self Behavior, child ports.Node, opts ...Option) *Decorator {
	return &Decorator{
		Base:  NewBase(kind, self, opts...),
		child: child,
	}
}

// Child returns the decorated node.
func (d *Decorator) Child() ports.Node { return d.child }

// Children implements ports.Parent.
func (d *Decorator) Children() []ports.Node {
	if IsNil(d.child) {
		return nil
	}
	return []ports.Node{d.child}
}

// ValidateAttributes implements AttributeValidator.
func (d *Decorator) ValidateAttributes() error {
	return validateChild(d.child)
}
