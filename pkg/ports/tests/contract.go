package tests

import (
	"testing"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NodeContractTest is a reusable test suite that verifies a node kind honors the
// lifecycle contract of ports.Node. factory must return a fresh, valid node.
func NodeContractTest(t *testing.T, factory func() ports.Node) {
	t.Helper()

	t.Run("Construction", func(t *testing.T) {
		n := factory()
		assert.NotEmpty(t, n.ID())
		assert.NotEmpty(t, n.Kind())
		assert.Equal(t, domain.StateReady, n.State())
		assert.Equal(t, domain.ResponseUnknown, n.Response())
	})

	t.Run("Process_NotRunning", func(t *testing.T) {
		n := factory()
		_, err := n.Process(nil, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Process_ReturnsSelf", func(t *testing.T) {
		n := factory()
		require.NoError(t, n.Start())
		got, err := n.Process(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, n.ID(), got.ID())
		assert.True(t, n.Response().Valid(), "response after a tick must not be unknown")
	})

	t.Run("Lifecycle", func(t *testing.T) {
		n := factory()
		require.NoError(t, n.Start())
		assert.Equal(t, domain.StateRunning, n.State())
		assert.ErrorIs(t, n.Start(), domain.ErrInvalidState)

		require.NoError(t, n.Pause())
		assert.Equal(t, domain.StatePaused, n.State())
		_, err := n.Process(nil, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		require.NoError(t, n.Resume())
		require.NoError(t, n.Stop())
		assert.Equal(t, domain.StateStopped, n.State())
		assert.ErrorIs(t, n.Stop(), domain.ErrInvalidState)
	})

	t.Run("Restart_ResetsResponse", func(t *testing.T) {
		n := factory()
		require.NoError(t, n.Start())
		_, err := n.Process(nil, nil)
		require.NoError(t, err)
		require.NoError(t, n.Stop())

		require.NoError(t, n.Start())
		assert.Equal(t, domain.ResponseUnknown, n.Response())
		assert.Equal(t, domain.StateRunning, n.State())
	})

	t.Run("Children_FollowLifecycle", func(t *testing.T) {
		n := factory()
		parent, ok := n.(ports.Parent)
		if !ok {
			t.Skip("node has no children")
		}
		require.NoError(t, n.Start())
		for _, c := range parent.Children() {
			assert.Equal(t, domain.StateRunning, c.State(), "child %s", c.ID())
		}
		require.NoError(t, n.Stop())
		for _, c := range parent.Children() {
			assert.Equal(t, domain.StateStopped, c.State(), "child %s", c.ID())
		}
	})
}
