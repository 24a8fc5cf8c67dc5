// Package linkcheck decides whether a link is safe to visit. It answers from
// the stored verdicts when it can and asks the reputation provider otherwise,
// writing what it learned back to the store after the caller got its answer.
package linkcheck

import (
	"context"
	"secondchance/pkg/domain"
)

//go:generate mockgen -package mocklinkcheck -source=interface.go -destination=mock/mocklinkcheck.go *
type Checker interface {
	// CheckLink returns the verdict for the host of rawURL. It never fails;
	// a verdict with Success false means nothing is known about the host.
	CheckLink(ctx context.Context, rawURL string) domain.Verdict
	// UpdateLink marks the host of rawURL as safe.
	UpdateLink(ctx context.Context, rawURL string) domain.Ack
	// Wait blocks until every write started by CheckLink has finished or ctx is done.
	// Writes CheckLink would start after Wait was called are dropped, so call it
	// once no more checks are expected.
	Wait(ctx context.Context) error
}
