package core

import (
	"slices"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/strategy"
)

// SelectorConfig holds the attributes of a Selector.
type SelectorConfig struct {
	CompositeConfig
	// Picker chooses the child to tick. Defaults to round-robin.
	Picker strategy.Picker
}

// Selector ticks a single child per tick, chosen by its picker among the
// prepared children, and adopts its response. A picked child that is still
// busy keeps being ticked until it reaches a terminal response.
type Selector struct {
	*Composite
	picker  strategy.Picker
	current ports.Node
}

// NewSelector builds a Selector.
func NewSelector(cfg SelectorConfig, opts ...Option) (*Selector, error) {
	n := &Selector{picker: cfg.Picker}
	if n.picker == nil {
		n.picker = strategy.NewRoundRobin()
	}
	n.Composite = NewComposite(KindSelector, n, cfg.CompositeConfig, opts...)
	return finish(n)
}

// Picker returns the picker of the selector.
func (n *Selector) Picker() strategy.Picker { return n.picker }

// Current returns the child picked on the last tick, or nil.
func (n *Selector) Current() ports.Node { return n.current }

// Execute implements Behavior.
func (n *Selector) Execute(entity, world any) (domain.Response, error) {
	candidates := n.PrepareNodes(n.Children(), n.Reversed())

	picked := n.current
	if picked == nil || picked.Response() != domain.ResponseBusy || !slices.Contains(candidates, picked) {
		picked = n.picker.PickOne(candidates)
	}
	n.current = picked
	if picked == nil {
		return domain.ResponseFailed, nil
	}

	child, err := picked.Process(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	return child.Response(), nil
}

// Reset implements Resetter.
func (n *Selector) Reset() {
	n.current = nil
	n.picker.Reset()
}
