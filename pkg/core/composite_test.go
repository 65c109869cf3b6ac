package core

import (
	"testing"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubs(t *testing.T, responses ...domain.Response) []ports.Node {
	t.Helper()
	nodes := make([]ports.Node, len(responses))
	for i, r := range responses {
		nodes[i] = newStub(t, string(rune('a'+i)), r)
	}
	return nodes
}

const (
	succ = domain.ResponseSucceeded
	fail = domain.ResponseFailed
	busy = domain.ResponseBusy
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name     string
		children []domain.Response
		want     domain.Response
	}{
		{"all succeeded", []domain.Response{succ, succ}, succ},
		{"one busy", []domain.Response{succ, busy, succ}, busy},
		{"one failed", []domain.Response{fail, succ}, fail},
		{"failed beats busy", []domain.Response{busy, fail}, fail},
		{"empty", nil, succ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := NewSequence(CompositeConfig{Children: stubs(t, tt.children...)})
			require.NoError(t, err)
			started(t, seq)

			_, err = seq.Process(nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seq.Response())
		})
	}
}

func TestXor(t *testing.T) {
	tests := []struct {
		name     string
		children []domain.Response
		want     domain.Response
	}{
		{"single success", []domain.Response{succ}, succ},
		{"two successes", []domain.Response{succ, succ}, fail},
		{"single failure", []domain.Response{fail}, fail},
		{"busy pending", []domain.Response{fail, succ, busy}, busy},
		{"success and failures", []domain.Response{fail, succ, fail}, succ},
		{"empty", nil, fail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xor, err := NewXor(CompositeConfig{Children: stubs(t, tt.children...)})
			require.NoError(t, err)
			started(t, xor)

			_, err = xor.Process(nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, xor.Response())
		})
	}
}

func TestComposite_Pipeline(t *testing.T) {
	children := stubs(t, succ, busy, fail)
	seq, err := NewSequence(CompositeConfig{
		Children: children,
		Filters:  []strategy.Filter{strategy.Running()},
		Sorter:   strategy.ByIdentifier(),
		Reversed: true,
	})
	require.NoError(t, err)
	started(t, seq)
	require.NoError(t, children[2].Pause())

	prepared := seq.PrepareNodes(seq.Children(), seq.Reversed())
	require.Len(t, prepared, 2)
	assert.Equal(t, "b", prepared[0].ID())
	assert.Equal(t, "a", prepared[1].ID())

	_, err = seq.Process(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseBusy, seq.Response(), "paused failing child is filtered out")
	assert.Equal(t, 0, children[2].(*stub).ticks)
}

func TestComposite_PendingFilter(t *testing.T) {
	first := newStub(t, "first", succ)
	second := newStub(t, "second", busy, succ)
	seq, err := NewSequence(CompositeConfig{
		Children: []ports.Node{first, second},
		Filters:  []strategy.Filter{strategy.Pending()},
	})
	require.NoError(t, err)
	started(t, seq)

	_, err = seq.Process(nil, nil)
	require.NoError(t, err)
	assert.True(t, seq.Busy())

	_, err = seq.Process(nil, nil)
	require.NoError(t, err)
	assert.True(t, seq.Succeeded())
	assert.Equal(t, 1, first.ticks, "succeeded child is not ticked again")
	assert.Equal(t, 2, second.ticks)
}

func TestComposite_Responses(t *testing.T) {
	seq, err := NewSequence(CompositeConfig{})
	require.NoError(t, err)

	tally := seq.InitializeResponses()
	assert.Equal(t, domain.Tally{}, tally)
	tally = seq.Respond(tally, domain.ResponseBusy)
	tally = seq.Respond(tally, domain.ResponseBusy)
	assert.Equal(t, 2, tally.Busy)
	assert.NotNil(t, seq.Children())
	assert.Empty(t, seq.Children())
}

func TestComposite_NilChild(t *testing.T) {
	_, err := NewSequence(CompositeConfig{Children: []ports.Node{nil}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	var missing *Selector
	_, err = NewXor(CompositeConfig{Children: []ports.Node{newStub(t, "a", succ), missing}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestComposite_ChildError(t *testing.T) {
	children := stubs(t, succ, succ)
	children[1].(*stub).err = errBoom
	seq, err := NewSequence(CompositeConfig{Children: children})
	require.NoError(t, err)
	started(t, seq)

	_, err = seq.Process(nil, nil)
	assert.ErrorIs(t, err, errBoom)
}

func TestComposite_Lifecycle(t *testing.T) {
	children := stubs(t, succ, busy)
	xor, err := NewXor(CompositeConfig{Children: children})
	require.NoError(t, err)

	started(t, xor)
	for _, c := range children {
		assert.Equal(t, domain.StateRunning, c.State())
	}

	require.NoError(t, xor.Pause())
	for _, c := range children {
		assert.Equal(t, domain.StatePaused, c.State())
	}

	require.NoError(t, xor.Resume())
	require.NoError(t, children[0].Stop())
	require.NoError(t, xor.Stop(), "already stopped children are tolerated")
	for _, c := range children {
		assert.Equal(t, domain.StateStopped, c.State())
	}

	started(t, xor)
	for _, c := range children {
		assert.Equal(t, domain.StateRunning, c.State())
		assert.Equal(t, domain.ResponseUnknown, c.Response())
	}
}

func TestSelector(t *testing.T) {
	t.Run("Round robin by default", func(t *testing.T) {
		children := stubs(t, succ, fail, succ)
		sel, err := NewSelector(SelectorConfig{CompositeConfig: CompositeConfig{Children: children}})
		require.NoError(t, err)
		started(t, sel)

		var got []domain.Response
		var picked []string
		for range 4 {
			_, err := sel.Process(nil, nil)
			require.NoError(t, err)
			got = append(got, sel.Response())
			picked = append(picked, sel.Current().ID())
		}
		assert.Equal(t, []domain.Response{succ, fail, succ, succ}, got)
		assert.Equal(t, []string{"a", "b", "c", "a"}, picked)
	})

	t.Run("Busy child keeps being ticked", func(t *testing.T) {
		first := newStub(t, "first", busy, busy, succ)
		second := newStub(t, "second", fail)
		sel, err := NewSelector(SelectorConfig{CompositeConfig: CompositeConfig{Children: []ports.Node{first, second}}})
		require.NoError(t, err)
		started(t, sel)

		for _, want := range []domain.Response{busy, busy, succ, fail} {
			_, err := sel.Process(nil, nil)
			require.NoError(t, err)
			assert.Equal(t, want, sel.Response())
		}
		assert.Equal(t, 3, first.ticks)
		assert.Equal(t, 1, second.ticks)
	})

	t.Run("Empty fails", func(t *testing.T) {
		sel, err := NewSelector(SelectorConfig{})
		require.NoError(t, err)
		started(t, sel)

		_, err = sel.Process(nil, nil)
		require.NoError(t, err)
		assert.True(t, sel.Failed())
		assert.Nil(t, sel.Current())
	})

	t.Run("Restart resets picker", func(t *testing.T) {
		picker := strategy.NewRoundRobin()
		sel, err := NewSelector(SelectorConfig{
			CompositeConfig: CompositeConfig{Children: stubs(t, succ, succ)},
			Picker:          picker,
		})
		require.NoError(t, err)
		started(t, sel)

		_, err = sel.Process(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, picker.Current())

		require.NoError(t, sel.Stop())
		require.NoError(t, sel.Start())
		assert.Equal(t, 0, picker.Current())
		assert.Nil(t, sel.Current())
	})
}
