// Package recorder provides in-process implementations of ports.Recorder.
package recorder

import (
	"slices"
	"sync"

	"github.com/aretw0/araignee/pkg/ports"
)

// Series keeps every recorded value, grouped by metric.
type Series struct {
	mu     sync.Mutex
	values map[string][]float64
}

// NewSeries returns an empty Series.
func NewSeries() *Series {
	return &Series{values: make(map[string][]float64)}
}

// Record implements ports.Recorder.
func (s *Series) Record(metric string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[metric] = append(s.values[metric], value)
}

// Values returns a copy of the values recorded under metric.
func (s *Series) Values(metric string) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.values[metric])
}

// Metrics returns the recorded metric names, sorted.
func (s *Series) Metrics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Multi fans samples out to several recorders.
type Multi []ports.Recorder

// Record implements ports.Recorder.
func (m Multi) Record(metric string, value float64) {
	for _, r := range m {
		r.Record(metric, value)
	}
}

// Nop discards every sample.
type Nop struct{}

// Record implements ports.Recorder.
func (Nop) Record(string, float64) {}

// Shared returns a factory handing the same recorder to every node.
func Shared(r ports.Recorder) ports.RecorderFactory {
	return func(string, string) ports.Recorder { return r }
}

// Combine returns a factory merging the recorders of several factories.
// Nil factories are skipped. It returns nil when no factory remains.
func Combine(factories ...ports.RecorderFactory) ports.RecorderFactory {
	var active []ports.RecorderFactory
	for _, f := range factories {
		if f != nil {
			active = append(active, f)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(id, kind string) ports.Recorder {
		m := make(Multi, 0, len(active))
		for _, f := range active {
			m = append(m, f(id, kind))
		}
		return m
	}
}
