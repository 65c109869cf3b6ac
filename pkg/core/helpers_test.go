package core

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stub is a leaf replaying scripted responses; the last one repeats.
type stub struct {
	*Base
	script []domain.Response
	ticks  int
	err    error
}

func newStub(t *testing.T, id string, script ...domain.Response) *stub {
	t.Helper()
	n := &stub{script: script}
	n.Base = NewBase("stub", n, WithID(id))
	require.NoError(t, n.Validate())
	return n
}

func (n *stub) Execute(_, _ any) (domain.Response, error) {
	if n.err != nil {
		return domain.ResponseUnknown, n.err
	}
	i := min(n.ticks, len(n.script)-1)
	n.ticks++
	return n.script[i], nil
}

func started(t *testing.T, n interface{ Start() error }) {
	t.Helper()
	require.NoError(t, n.Start())
}

var errBoom = errors.New("boom")

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(metric string, value float64) {
	m.Called(metric, value)
}

// steppingClock returns a clock advancing by step on every read.
func steppingClock(step time.Duration) func() time.Time {
	cur := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

// manualClock is a clock moved explicitly by tests.
type manualClock struct {
	cur time.Time
}

func newManualClock() *manualClock {
	return &manualClock{cur: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.cur }
func (c *manualClock) Advance(d time.Duration) { c.cur = c.cur.Add(d) }

func debugLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
