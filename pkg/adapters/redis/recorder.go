// Package redis ships node telemetry to Redis lists.
//
// Recording never performs I/O: samples are buffered in memory and pushed by
// Flush, which the driver calls between ticks.
package redis

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/aretw0/araignee/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Sink buffers samples of many nodes and flushes them to Redis.
// Each (node, metric) pair is stored as a capped list under
// <prefix><node id>:<metric>; the set <prefix>index lists the node ids seen.
type Sink struct {
	client *backend.Client
	prefix string
	limit  int64
	ttl    time.Duration

	mu      sync.Mutex
	pending []sample
}

type sample struct {
	node   string
	metric string
	value  float64
}

type Option func(*Sink)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Sink) {
		s.prefix = prefix
	}
}

// WithLimit caps the number of values kept per list. Zero keeps everything.
func WithLimit(limit int64) Option {
	return func(s *Sink) {
		s.limit = limit
	}
}

// WithTTL sets the expiration refreshed on every flush. Zero never expires.
func WithTTL(ttl time.Duration) Option {
	return func(s *Sink) {
		s.ttl = ttl
	}
}

// New creates a Sink connected to the given Redis server.
func New(address, password string, db int, opts ...Option) *Sink {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Sink from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Sink {
	sink := &Sink{
		client: client,
		prefix: "araignee:metrics:",
		limit:  1000,
	}

	for _, opt := range opts {
		opt(sink)
	}

	return sink
}

// For returns the recorder of the node with the given identifier.
// Its signature matches ports.RecorderFactory.
func (s *Sink) For(id, _ string) ports.Recorder {
	return &nodeRecorder{sink: s, node: id}
}

type nodeRecorder struct {
	sink *Sink
	node string
}

func (r *nodeRecorder) Record(metric string, value float64) {
	r.sink.mu.Lock()
	r.sink.pending = append(r.sink.pending, sample{node: r.node, metric: metric, value: value})
	r.sink.mu.Unlock()
}

// Pending returns the number of buffered samples.
func (s *Sink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Sink) key(node, metric string) string {
	return s.prefix + node + ":" + metric
}

func (s *Sink) indexKey() string {
	return s.prefix + "index"
}

// Flush pushes the buffered samples in a single pipeline. On failure the
// samples are kept for the next flush.
func (s *Sink) Flush(ctx context.Context) error {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	grouped := make(map[string][]any)
	var order []string
	nodes := make(map[string]struct{})
	for _, smp := range batch {
		k := s.key(smp.node, smp.metric)
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], strconv.FormatFloat(smp.value, 'f', -1, 64))
		nodes[smp.node] = struct{}{}
	}

	pipe := s.client.Pipeline()
	for _, k := range order {
		pipe.RPush(ctx, k, grouped[k]...)
		if s.limit > 0 {
			pipe.LTrim(ctx, k, -s.limit, -1)
		}
		if s.ttl > 0 {
			pipe.Expire(ctx, k, s.ttl)
		}
	}
	members := make([]any, 0, len(nodes))
	for n := range nodes {
		members = append(members, n)
	}
	pipe.SAdd(ctx, s.indexKey(), members...)

	if _, err := pipe.Exec(ctx); err != nil {
		s.mu.Lock()
		s.pending = append(batch, s.pending...)
		s.mu.Unlock()
		return fmt.Errorf("failed to flush %d samples: %w", len(batch), err)
	}
	return nil
}

// Values reads back the stored values of a node metric, oldest first.
func (s *Sink) Values(ctx context.Context, node, metric string) ([]float64, error) {
	raw, err := s.client.LRange(ctx, s.key(node, metric), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", node, metric, err)
	}
	values := make([]float64, 0, len(raw))
	for _, r := range raw {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt sample %q for %s/%s: %w", r, node, metric, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Nodes lists the identifiers of the nodes that flushed samples, sorted.
func (s *Sink) Nodes(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	slices.Sort(ids)
	return ids, nil
}

// Close closes the underlying client.
func (s *Sink) Close() error {
	return s.client.Close()
}
