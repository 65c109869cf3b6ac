package strategy

import (
	"cmp"
	"slices"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
)

// Sorter orders the nodes a composite evaluates.
// Implementations return a new slice and never mutate their input.
type Sorter interface {
	Sort(nodes []ports.Node, reversed bool) []ports.Node
}

// SortFunc adapts a three-way comparison (negative, zero, positive) to a
// stable Sorter.
type SortFunc func(a, b ports.Node) int

// Sort implements Sorter.
func (f SortFunc) Sort(nodes []ports.Node, reversed bool) []ports.Node {
	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, func(a, b ports.Node) int {
		if reversed {
			return f(b, a)
		}
		return f(a, b)
	})
	return sorted
}

// ByIdentifier orders nodes lexically by identifier.
func ByIdentifier() Sorter {
	return SortFunc(func(a, b ports.Node) int {
		return cmp.Compare(a.ID(), b.ID())
	})
}

var responseRank = map[domain.Response]int{
	domain.ResponseBusy:      0,
	domain.ResponseFailed:    1,
	domain.ResponseSucceeded: 2,
	domain.ResponseUnknown:   3,
}

// ByResponse orders nodes busy first, then failed, succeeded and unknown.
func ByResponse() Sorter {
	return SortFunc(func(a, b ports.Node) int {
		return cmp.Compare(responseRank[a.Response()], responseRank[b.Response()])
	})
}
