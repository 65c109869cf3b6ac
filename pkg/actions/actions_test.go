package actions

import (
	"errors"
	"testing"

	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(t *testing.T, n ports.Node, entity, world any) domain.Response {
	t.Helper()
	got, err := n.Process(entity, world)
	require.NoError(t, err)
	return got.Response()
}

func TestFixedActions(t *testing.T) {
	cases := []struct {
		build func(...core.Option) (*Func, error)
		kind  string
		want  domain.Response
	}{
		{NewSucceeded, KindSucceeded, domain.ResponseSucceeded},
		{NewFailed, KindFailed, domain.ResponseFailed},
		{NewBusy, KindBusy, domain.ResponseBusy},
	}

	for _, tt := range cases {
		t.Run(tt.kind, func(t *testing.T) {
			n, err := tt.build(core.WithID(tt.kind))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, n.Kind())
			require.NoError(t, n.Start())

			assert.Equal(t, tt.want, tick(t, n, nil, nil))
			assert.Equal(t, tt.want, tick(t, n, nil, nil))
		})
	}
}

func TestFunc(t *testing.T) {
	_, err := NewFunc(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	var seen []any
	n, err := NewFunc(func(entity, world any) (domain.Response, error) {
		seen = append(seen, entity, world)
		return domain.ResponseBusy, nil
	})
	require.NoError(t, err)
	require.NoError(t, n.Start())

	assert.Equal(t, domain.ResponseBusy, tick(t, n, "hero", "map"))
	assert.Equal(t, []any{"hero", "map"}, seen)

	boom := errors.New("boom")
	failing, err := NewFunc(func(_, _ any) (domain.Response, error) { return domain.ResponseUnknown, boom })
	require.NoError(t, err)
	require.NoError(t, failing.Start())
	_, err = failing.Process(nil, nil)
	assert.ErrorIs(t, err, boom)
}

func TestTemporaryFailed(t *testing.T) {
	n, err := NewTemporaryFailed(TemporaryFailedConfig{Times: 2})
	require.NoError(t, err)
	require.NoError(t, n.Start())

	var got []domain.Response
	for range 4 {
		got = append(got, tick(t, n, nil, nil))
	}
	assert.Equal(t, []domain.Response{
		domain.ResponseFailed, domain.ResponseFailed, domain.ResponseSucceeded, domain.ResponseSucceeded,
	}, got)
	assert.Equal(t, 2, n.Counter())

	require.NoError(t, n.Stop())
	require.NoError(t, n.Start())
	assert.Equal(t, 0, n.Counter())
	assert.Equal(t, domain.ResponseFailed, tick(t, n, nil, nil))

	_, err = NewTemporaryFailed(TemporaryFailedConfig{Times: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTemporaryFailed_UnderLimiter(t *testing.T) {
	flaky, err := NewTemporaryFailed(TemporaryFailedConfig{Times: 2})
	require.NoError(t, err)
	limiter, err := core.NewLimiter(core.LimiterConfig{Child: flaky, Times: 3})
	require.NoError(t, err)
	require.NoError(t, limiter.Start())

	assert.Equal(t, domain.ResponseFailed, tick(t, limiter, nil, nil))
	assert.Equal(t, domain.ResponseFailed, tick(t, limiter, nil, nil))
	assert.Equal(t, domain.ResponseSucceeded, tick(t, limiter, nil, nil))
}

func TestCondition(t *testing.T) {
	n, err := NewCondition(ConditionConfig{Expression: "entity.hp > 20 && world.day"})
	require.NoError(t, err)
	require.NoError(t, n.Start())

	world := map[string]any{"day": true}
	assert.Equal(t, domain.ResponseSucceeded, tick(t, n, map[string]any{"hp": 30}, world))
	assert.Equal(t, domain.ResponseFailed, tick(t, n, map[string]any{"hp": 10}, world))
	assert.Equal(t, "entity.hp > 20 && world.day", n.Expression())

	t.Run("Empty expression", func(t *testing.T) {
		_, err := NewCondition(ConditionConfig{})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Syntax error", func(t *testing.T) {
		_, err := NewCondition(ConditionConfig{Expression: "entity.hp >"})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Not a boolean", func(t *testing.T) {
		_, err := NewCondition(ConditionConfig{Expression: `"text"`})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestActionContract(t *testing.T) {
	factories := map[string]func() ports.Node{
		KindSucceeded: func() ports.Node {
			n, _ := NewSucceeded()
			return n
		},
		KindTemporaryFailed: func() ports.Node {
			n, _ := NewTemporaryFailed(TemporaryFailedConfig{Times: 1})
			return n
		},
		KindCondition: func() ports.Node {
			n, _ := NewCondition(ConditionConfig{Expression: "true"})
			return n
		},
	}
	for kind, factory := range factories {
		t.Run(kind, func(t *testing.T) {
			tests.NodeContractTest(t, factory)
		})
	}
}
