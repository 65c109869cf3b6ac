package strategy

import (
	"math/rand/v2"
	"testing"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	id       string
	state    domain.LifecycleState
	response domain.Response
}

func (f *fakeNode) ID() string { return f.id }
func (f *fakeNode) Kind() string { return "fake" }
func (f *fakeNode) State() domain.LifecycleState { return f.state }
func (f *fakeNode) Response() domain.Response { return f.response }
func (f *fakeNode) Start() error { return nil }
func (f *fakeNode) Stop() error { return nil }
func (f *fakeNode) Pause() error { return nil }
func (f *fakeNode) Resume() error { return nil }
func (f *fakeNode) Process(_, _ any) (ports.Node, error) { return f, nil }

func node(id string, state domain.LifecycleState, resp domain.Response) ports.Node {
	return &fakeNode{id: id, state: state, response: resp}
}

func ids(nodes []ports.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}

func TestFilters(t *testing.T) {
	nodes := []ports.Node{
		node("a", domain.StateRunning, domain.ResponseBusy),
		node("b", domain.StatePaused, domain.ResponseBusy),
		node("c", domain.StateRunning, domain.ResponseSucceeded),
		node("d", domain.StateStopped, domain.ResponseUnknown),
		node("e", domain.StateRunning, domain.ResponseUnknown),
	}

	assert.Equal(t, []string{"a", "c", "e"}, ids(Running().Filter(nodes)))
	assert.Equal(t, []string{"a", "e"}, ids(Pending().Filter(nodes)))
	assert.Len(t, nodes, 5, "input must not be modified")

	assert.Empty(t, Running().Filter(nil))
}

func TestSorters(t *testing.T) {
	nodes := []ports.Node{
		node("c", domain.StateRunning, domain.ResponseSucceeded),
		node("a", domain.StateRunning, domain.ResponseUnknown),
		node("d", domain.StateRunning, domain.ResponseBusy),
		node("b", domain.StateRunning, domain.ResponseFailed),
		node("e", domain.StateRunning, domain.ResponseBusy),
	}

	t.Run("ByIdentifier", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(ByIdentifier().Sort(nodes, false)))
		assert.Equal(t, []string{"e", "d", "c", "b", "a"}, ids(ByIdentifier().Sort(nodes, true)))
	})

	t.Run("ByResponse is stable", func(t *testing.T) {
		assert.Equal(t, []string{"d", "e", "b", "c", "a"}, ids(ByResponse().Sort(nodes, false)))
	})

	t.Run("Input untouched", func(t *testing.T) {
		_ = ByIdentifier().Sort(nodes, false)
		assert.Equal(t, []string{"c", "a", "d", "b", "e"}, ids(nodes))
	})
}

func TestRoundRobin(t *testing.T) {
	nodes := []ports.Node{
		node("a", domain.StateRunning, domain.ResponseUnknown),
		node("d", domain.StateRunning, domain.ResponseUnknown),
		node("b", domain.StateRunning, domain.ResponseUnknown),
		node("c", domain.StateRunning, domain.ResponseUnknown),
	}

	p := NewRoundRobin()
	assert.Equal(t, 0, p.Current())

	var picked []string
	for range 5 {
		picked = append(picked, p.PickOne(nodes).ID())
	}
	assert.Equal(t, []string{"a", "d", "b", "c", "a"}, picked)
	assert.Equal(t, 1, p.Current())

	p.Reset()
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, "a", p.PickOne(nodes).ID())

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, NewRoundRobin().PickOne(nil))
	})

	t.Run("Shrinking set wraps", func(t *testing.T) {
		p := NewRoundRobin()
		p.PickOne(nodes)
		p.PickOne(nodes)
		p.PickOne(nodes)
		assert.Equal(t, "a", p.PickOne(nodes[:2]).ID())
	})
}

func TestRandom(t *testing.T) {
	nodes := []ports.Node{
		node("a", domain.StateRunning, domain.ResponseUnknown),
		node("b", domain.StateRunning, domain.ResponseUnknown),
		node("c", domain.StateRunning, domain.ResponseUnknown),
	}

	first := NewRandom(WithSource(rand.NewPCG(1, 2)))
	second := NewRandom(WithSource(rand.NewPCG(1, 2)))
	for range 10 {
		a := first.PickOne(nodes)
		require.NotNil(t, a)
		assert.Equal(t, a.ID(), second.PickOne(nodes).ID(), "same seed must pick the same nodes")
	}

	assert.Nil(t, NewRandom().PickOne(nil))
}
