package tasks

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/contact-api/internal/logging"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunnerDetachesFromParentCancellation(t *testing.T) {
	r := NewRunner(logging.NewWithWriter(&syncBuffer{}, logging.LevelDebug))

	parent, cancel := context.WithCancel(context.Background())
	cancel()

	got := make(chan error, 1)
	r.Go(parent, "probe", func(ctx context.Context) error {
		got <- ctx.Err()
		return nil
	})

	require.NoError(t, r.Wait(context.Background()))
	assert.NoError(t, <-got)
}

func TestRunnerLogsFailures(t *testing.T) {
	var out syncBuffer
	r := NewRunner(logging.NewWithWriter(&out, logging.LevelInfo))

	r.Go(context.Background(), "confirmation", func(ctx context.Context) error {
		return errors.New("mailbox full")
	})
	require.NoError(t, r.Wait(context.Background()))

	assert.Contains(t, out.String(), "confirmation failed (non-critical)")
	assert.Contains(t, out.String(), "mailbox full")
}

func TestRunnerRecoversPanics(t *testing.T) {
	var out syncBuffer
	r := NewRunner(logging.NewWithWriter(&out, logging.LevelInfo))

	r.Go(context.Background(), "boom", func(ctx context.Context) error {
		panic("kaboom")
	})
	require.NoError(t, r.Wait(context.Background()))

	assert.Contains(t, out.String(), "panic: kaboom")
}

func TestRunnerWaitHonoursDeadline(t *testing.T) {
	r := NewRunner(logging.NewWithWriter(&syncBuffer{}, logging.LevelInfo))

	release := make(chan struct{})
	defer close(release)
	r.Go(context.Background(), "slow", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
}
