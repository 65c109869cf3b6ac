package core

import (
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/strategy"
)

// CompositeConfig holds the attributes shared by composite kinds.
type CompositeConfig struct {
	Children []ports.Node
	// Filters are applied in order before every tick.
	Filters []strategy.Filter
	// Sorter orders the filtered children. Nil keeps declaration order.
	Sorter   strategy.Sorter
	Reversed bool
}

// Composite is the base of nodes owning an ordered set of children.
type Composite struct {
	*Base
	children []ports.Node
	filters  []strategy.Filter
	sorter   strategy.Sorter
	reversed bool
}

// NewComposite returns the Composite of a node of the given kind.
func NewComposite(kind string, self Behavior, cfg CompositeConfig, opts ...Option) *Composite {
	children := cfg.Children
	if children == nil {
		children = []ports.Node{}
	}
	return &Composite{
		Base:     NewBase(kind, self, opts...),
		children: children,
		filters:  cfg.Filters,
		sorter:   cfg.Sorter,
		reversed: cfg.Reversed,
	}
}

// Children implements ports.Parent.
func (c *Composite) Children() []ports.Node { return c.children }

func (c *Composite) Filters() []strategy.Filter { return c.filters }

func (c *Composite) Sorter() strategy.Sorter { return c.sorter }

func (c *Composite) Reversed() bool { return c.reversed }

// ValidateAttributes implements AttributeValidator.
func (c *Composite) ValidateAttributes() error {
	for _, child := range c.children {
		if IsNil(child) {
			return domain.InvalidArgument("invalid child node")
		}
	}
	return nil
}

// Filter applies every filter of the composite, in order.
func (c *Composite) Filter(nodes []ports.Node) []ports.Node {
	for _, f := range c.filters {
		nodes = f.Filter(nodes)
	}
	return nodes
}

// Sort orders nodes with the sorter of the composite, if any.
func (c *Composite) Sort(nodes []ports.Node, reversed bool) []ports.Node {
	if c.sorter == nil {
		return nodes
	}
	return c.sorter.Sort(nodes, reversed)
}

// PrepareNodes filters then sorts nodes.
func (c *Composite) PrepareNodes(nodes []ports.Node, reversed bool) []ports.Node {
	return c.Sort(c.Filter(nodes), reversed)
}

// InitializeResponses returns the zero tally a tick starts from.
func (c *Composite) InitializeResponses() domain.Tally {
	return domain.Tally{}
}

// Respond counts r into t.
func (c *Composite) Respond(t domain.Tally, r domain.Response) domain.Tally {
	return t.Add(r)
}

// Evaluate processes every prepared child once and tallies their responses.
func (c *Composite) Evaluate(entity, world any) (domain.Tally, error) {
	tally := c.InitializeResponses()
	for _, child := range c.PrepareNodes(c.children, c.reversed) {
		n, err := child.Process(entity, world)
		if err != nil {
			return tally, err
		}
		tally = c.Respond(tally, n.Response())
	}
	return tally, nil
}
