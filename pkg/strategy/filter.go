package strategy

import (
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
)

// Filter removes nodes that should not take part in the current tick.
// Implementations return a new slice and never mutate their input.
type Filter interface {
	Filter(nodes []ports.Node) []ports.Node
}

// FilterFunc adapts a predicate to a Filter. Nodes for which it returns true are kept.
type FilterFunc func(ports.Node) bool

// Filter implements Filter.
func (f FilterFunc) Filter(nodes []ports.Node) []ports.Node {
	kept := make([]ports.Node, 0, len(nodes))
	for _, n := range nodes {
		if f(n) {
			kept = append(kept, n)
		}
	}
	return kept
}

// Running keeps nodes whose lifecycle state is running.
func Running() Filter {
	return FilterFunc(func(n ports.Node) bool {
		return n.State() == domain.StateRunning
	})
}

// Pending keeps running nodes that have not succeeded since their last reset.
func Pending() Filter {
	return FilterFunc(func(n ports.Node) bool {
		return n.State() == domain.StateRunning && n.Response() != domain.ResponseSucceeded
	})
}
