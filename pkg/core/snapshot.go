package core

import (
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
)

// Snapshot captures n and its descendants.
func Snapshot(n ports.Node) domain.Snapshot {
	snap := domain.Snapshot{
		ID:       n.ID(),
		Kind:     n.Kind(),
		State:    n.State(),
		Response: n.Response(),
	}
	if parent, ok := n.(ports.Parent); ok {
		for _, child := range parent.Children() {
			if IsNil(child) {
				continue
			}
			snap.Children = append(snap.Children, Snapshot(child))
		}
	}
	return snap
}

// Walk visits n and every descendant, parents first.
func Walk(n ports.Node, fn func(ports.Node)) {
	fn(n)
	if parent, ok := n.(ports.Parent); ok {
		for _, child := range parent.Children() {
			if child != nil {
				Walk(child, fn)
			}
		}
	}
}
