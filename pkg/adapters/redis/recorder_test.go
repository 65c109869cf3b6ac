package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/araignee/pkg/adapters/redis"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSink(t *testing.T, opts ...redis.Option) (*redis.Sink, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestSink_FlushRoundTrip(t *testing.T) {
	sink, mr := newSink(t)
	ctx := context.Background()

	patrol := sink.For("patrol", "sequence")
	wait := sink.For("wait-1", "wait")
	patrol.Record("duration", 0.0012)
	wait.Record("duration", 0.5)
	patrol.Record("duration", 0.0034)

	assert.Equal(t, 3, sink.Pending())
	assert.False(t, mr.Exists("araignee:metrics:patrol:duration"), "Record must not touch Redis")

	require.NoError(t, sink.Flush(ctx))
	assert.Zero(t, sink.Pending())

	values, err := sink.Values(ctx, "patrol", "duration")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0012, 0.0034}, values)

	nodes, err := sink.Nodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"patrol", "wait-1"}, nodes)

	require.NoError(t, sink.Flush(ctx), "empty flush is a no-op")
}

func TestSink_Limit(t *testing.T) {
	sink, _ := newSink(t, redis.WithLimit(2), redis.WithPrefix("test:"))
	ctx := context.Background()

	r := sink.For("n", "wait")
	for _, v := range []float64{1, 2, 3} {
		r.Record("duration", v)
	}
	require.NoError(t, sink.Flush(ctx))

	values, err := sink.Values(ctx, "n", "duration")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, values)
}

func TestSink_TTL(t *testing.T) {
	sink, mr := newSink(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	sink.For("n", "wait").Record("duration", 1)
	require.NoError(t, sink.Flush(ctx))
	assert.True(t, mr.Exists("araignee:metrics:n:duration"))

	mr.FastForward(2 * time.Second)
	assert.False(t, mr.Exists("araignee:metrics:n:duration"))
}

func TestSink_FlushFailureKeepsSamples(t *testing.T) {
	sink, mr := newSink(t)
	ctx := context.Background()

	sink.For("n", "wait").Record("duration", 1)
	mr.SetError("server down")

	err := sink.Flush(ctx)
	assert.Error(t, err)
	assert.Equal(t, 1, sink.Pending())

	mr.SetError("")
	require.NoError(t, sink.Flush(ctx))
	values, err := sink.Values(ctx, "n", "duration")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, values)
}
