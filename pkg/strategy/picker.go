package strategy

import (
	"math/rand/v2"
	"sync"

	"github.com/aretw0/araignee/pkg/ports"
)

// Picker chooses exactly one node out of a set.
type Picker interface {
	// PickOne returns the chosen node, or nil when nodes is empty.
	PickOne(nodes []ports.Node) ports.Node
	// Reset forgets any state carried between picks.
	Reset()
}

// RoundRobin picks nodes in turn, wrapping around at the end of the set.
type RoundRobin struct {
	mu      sync.Mutex
	current int
}

// NewRoundRobin returns a RoundRobin whose cursor is at the first node.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// PickOne implements Picker.
func (p *RoundRobin) PickOne(nodes []ports.Node) ports.Node {
	if len(nodes) == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current >= len(nodes) {
		p.current = 0
	}
	picked := nodes[p.current]
	p.current = (p.current + 1) % len(nodes)
	return picked
}

// Current returns the index the next pick will use.
func (p *RoundRobin) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Reset implements Picker.
func (p *RoundRobin) Reset() {
	p.mu.Lock()
	p.current = 0
	p.mu.Unlock()
}

// Random picks a node uniformly at random.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// RandomOption configures a Random picker.
type RandomOption func(*Random)

// WithSource sets the random source, for reproducible picks.
func WithSource(src rand.Source) RandomOption {
	return func(r *Random) {
		r.rng = rand.New(src)
	}
}

// NewRandom returns a Random picker seeded from the runtime by default.
func NewRandom(opts ...RandomOption) *Random {
	r := &Random{}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return r
}

// PickOne implements Picker.
func (r *Random) PickOne(nodes []ports.Node) ports.Node {
	if len(nodes) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return nodes[r.rng.IntN(len(nodes))]
}

// Reset implements Picker. Random carries no state between picks.
func (r *Random) Reset() {}
