package reputation

import (
	"context"
	"errors"
	"secondchance/pkg/domain"
	"secondchance/pkg/logger"
	"secondchance/pkg/serrors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CooldownClient wraps a Client and stops calling it for a while after it
// reported rate limiting. Calls made during the cooldown fail with
// serrors.ErrRateLimited. It is safe for concurrent use.
type CooldownClient struct {
	next   Client
	window time.Duration
	now    func() time.Time

	mu    sync.Mutex
	until time.Time
}

// NewCooldownClient returns next unchanged when window is not positive.
func NewCooldownClient(next Client, window time.Duration) Client {
	if window <= 0 {
		return next
	}

	return &CooldownClient{
		next:   next,
		window: window,
		now:    time.Now,
	}
}

func (c *CooldownClient) Classify(ctx context.Context, host string) (domain.ClassificationStats, error) {
	c.mu.Lock()
	until := c.until
	c.mu.Unlock()

	if now := c.now(); now.Before(until) {
		return domain.ClassificationStats{},
			serrors.With(serrors.ErrRateLimited, "cooling down for another %s", until.Sub(now).Round(time.Second))
	}

	stats, err := c.next.Classify(ctx, host)
	if errors.Is(err, serrors.ErrRateLimited) {
		resumeAt := c.now().Add(c.window)
		c.mu.Lock()
		if resumeAt.After(c.until) {
			c.until = resumeAt
		}
		c.mu.Unlock()

		logger.Warn(ctx, "reputation provider is rate limiting, cooling down",
			zap.Time("resumeAt", resumeAt))
	}

	return stats, err
}

// Ensure CooldownClient conforms to the Client interface at compile time.
var _ Client = (*CooldownClient)(nil)
