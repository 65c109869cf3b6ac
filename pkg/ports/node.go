package ports

import "github.com/aretw0/araignee/pkg/domain"

// Node is a unit of a behavior tree.
type Node interface {
	// ID returns the identifier fixed at construction.
	ID() string
	// Kind returns the registered kind name (e.g. "sequence").
	Kind() string
	State() domain.LifecycleState
	Response() domain.Response

	Start() error
	Stop() error
	Pause() error
	Resume() error

	// Process ticks the node once against entity and world and returns the
	// node itself. It returns domain.ErrInvalidState unless the node is running.
	Process(entity, world any) (Node, error)
}

// Parent is implemented by nodes that own children.
type Parent interface {
	Children() []Node
}
