package linkcheck

import (
	"context"
	"fmt"
	"secondchance/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

// detached runs writes that must outlive the request that triggered them.
// Once Wait has been called no new task is started.
type detached struct {
	timeout time.Duration

	mu      sync.Mutex
	closing bool
	wg      sync.WaitGroup
}

// Go runs fn in the background. fn gets a context that keeps the values of ctx
// (logger fields included) but is not canceled with it. Errors are logged.
// fn is dropped when Wait was already called.
func (d *detached) Go(ctx context.Context, task string, fn func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	d.mu.Lock()
	if d.closing {
		d.mu.Unlock()
		logger.Warn(ctx, "shutting down, dropping detached task", zap.String("task", task))

		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()

		if d.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.timeout)
			defer cancel()
		}

		if err := fn(ctx); err != nil {
			logger.Error(ctx, "detached task failed", zap.String("task", task), zap.Error(err))
		}
	}()
}

// Wait stops accepting tasks and blocks until the running ones are done or
// ctx ends.
func (d *detached) Wait(ctx context.Context) error {
	// wg.Add must not race with wg.Wait, so close before waiting
	d.mu.Lock()
	d.closing = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("could not wait for detached tasks: %w", ctx.Err())
	}
}
