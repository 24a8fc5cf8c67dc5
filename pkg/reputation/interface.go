// Package reputation defines the client used to ask a third-party provider
// how engines classify a host.
package reputation

import (
	"context"
	"secondchance/pkg/domain"
)

// Client is the abstraction for URL reputation providers.
//
// Classify returns the provider statistics for the canonical host. Failures
// carry a serrors kind: serrors.ErrNotFound when the provider never saw the
// host, serrors.ErrRateLimited when the quota is exhausted. Any other error is
// a transport failure.
//
//go:generate mockgen -package mockreputation -source=interface.go -destination=mock/mockreputation.go *
type Client interface {
	Classify(ctx context.Context, host string) (domain.ClassificationStats, error)
}
