// Package gobt bridges araignee nodes and github.com/joeycumines/go-behaviortree.
package gobt

import (
	"fmt"

	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	bt "github.com/joeycumines/go-behaviortree"
)

// KindAction is the kind of leaves wrapping a go-behaviortree node.
const KindAction = "bt"

// ToStatus converts a tick response to a go-behaviortree status.
// Unknown maps to bt.Failure.
func ToStatus(r domain.Response) bt.Status {
	switch r {
	case domain.ResponseBusy:
		return bt.Running
	case domain.ResponseSucceeded:
		return bt.Success
	}
	return bt.Failure
}

// FromStatus converts a go-behaviortree status to a tick response.
func FromStatus(s bt.Status) (domain.Response, error) {
	switch s {
	case bt.Running:
		return domain.ResponseBusy, nil
	case bt.Success:
		return domain.ResponseSucceeded, nil
	case bt.Failure:
		return domain.ResponseFailed, nil
	}
	return domain.ResponseUnknown, domain.InvalidArgument("invalid status: %v", s)
}

// Node exposes n as a go-behaviortree node ticking against entity and world.
// Errors returned by n are returned by the tick with a failure status.
func Node(n ports.Node, entity, world any) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		got, err := n.Process(entity, world)
		if err != nil {
			return bt.Failure, err
		}
		return ToStatus(got.Response()), nil
	})
}

// Action is a leaf delegating each tick to a go-behaviortree node.
type Action struct {
	*core.Base
	node bt.Node
}

// NewAction wraps node as an araignee leaf.
func NewAction(node bt.Node, opts ...core.Option) (*Action, error) {
	a := &Action{node: node}
	a.Base = core.NewBase(KindAction, a, opts...)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// ValidateAttributes implements core.AttributeValidator.
func (a *Action) ValidateAttributes() error {
	if a.node == nil {
		return domain.InvalidArgument("behaviortree node nil")
	}
	return nil
}

// Execute implements core.Behavior. Entity and world are not visible to the
// wrapped node, which carries its own state.
func (a *Action) Execute(_, _ any) (domain.Response, error) {
	status, err := a.node.Tick()
	if err != nil {
		return domain.ResponseUnknown, fmt.Errorf("behaviortree node %s: %w", a.ID(), err)
	}
	return FromStatus(status)
}
