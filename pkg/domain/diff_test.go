package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(rootResp, childResp Response) *Snapshot {
	return &Snapshot{
		ID: "root", Kind: "sequence", State: StateRunning, Response: rootResp,
		Children: []Snapshot{
			{ID: "a", Kind: "succeeded", State: StateRunning, Response: ResponseSucceeded},
			{ID: "b", Kind: "wait", State: StateRunning, Response: childResp},
		},
	}
}

func TestDiff(t *testing.T) {
	t.Run("Initial Load (Old is Nil)", func(t *testing.T) {
		diffs := Diff(nil, sampleSnapshot(ResponseBusy, ResponseBusy))
		require.Len(t, diffs, 3)
		assert.Equal(t, "root", diffs[0].ID)
		require.NotNil(t, diffs[2].Response)
		assert.Equal(t, ResponseBusy, *diffs[2].Response)
	})

	t.Run("No Changes", func(t *testing.T) {
		diffs := Diff(sampleSnapshot(ResponseBusy, ResponseBusy), sampleSnapshot(ResponseBusy, ResponseBusy))
		assert.Empty(t, diffs)
	})

	t.Run("Response Change", func(t *testing.T) {
		diffs := Diff(sampleSnapshot(ResponseBusy, ResponseBusy), sampleSnapshot(ResponseSucceeded, ResponseSucceeded))
		require.Len(t, diffs, 2)
		assert.Equal(t, "root", diffs[0].ID)
		assert.Nil(t, diffs[0].State)
		assert.Equal(t, ResponseSucceeded, *diffs[0].Response)
		assert.Equal(t, "b", diffs[1].ID)
	})

	t.Run("Nil New", func(t *testing.T) {
		assert.Nil(t, Diff(sampleSnapshot(ResponseBusy, ResponseBusy), nil))
	})
}

func TestSnapshot_Find(t *testing.T) {
	snap := sampleSnapshot(ResponseBusy, ResponseBusy)

	n, ok := snap.Find("b")
	require.True(t, ok)
	assert.Equal(t, "wait", n.Kind)

	_, ok = snap.Find("missing")
	assert.False(t, ok)
}
