package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osa911/contact-api/internal/logging"
)

// Runner starts fire-and-forget work that must not hold up the caller.
// Nothing is persisted: if the process exits first, pending tasks are lost.
type Runner struct {
	logger *logging.Logger
	wg     sync.WaitGroup
}

// NewRunner creates a runner that reports task outcomes to logger.
func NewRunner(logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Runner{logger: logger}
}

// Go runs fn in the background. parent only contributes values such as trace
// context; its cancellation does not reach fn.
func (r *Runner) Go(parent context.Context, name string, fn func(ctx context.Context) error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx := context.WithoutCancel(parent)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		start := time.Now()

		err := r.run(ctx, fn)
		if err != nil {
			r.logger.Warn("Background task %s failed (non-critical) after %s: %v", name, time.Since(start), err)
			return
		}
		r.logger.Debug("Background task %s completed in %s", name, time.Since(start))
	}()
}

func (r *Runner) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn(ctx)
}

// Wait blocks until all started tasks finish or ctx is done. It is meant for
// process shutdown only.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
