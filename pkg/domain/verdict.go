package domain

import "time"

// SafeScoreThreshold is the score a URL must strictly exceed to be considered safe.
const SafeScoreThreshold = 95

// OverrideScore is the score written when an operator marks a URL as safe.
const OverrideScore = 99

// Verdict is the outward-facing result of a safety check.
// When Success is false no other field carries meaning.
type Verdict struct {
	// URL is the canonical host the verdict applies to.
	URL string
	// Score ranges over (-inf, 100]; higher is safer.
	Score int
	// Safe reports whether Score is above SafeScoreThreshold.
	Safe bool
	// Success is false when no data could be obtained for the URL.
	Success bool
}

// FailedVerdict returns the verdict reported when neither the store nor the
// reputation provider could produce a result.
func FailedVerdict() Verdict {
	return Verdict{}
}

// Ack is the result of an operator override.
type Ack struct {
	URL     string
	Success bool
}

// ClassificationStats are the per-engine counters reported by the reputation
// provider for a URL. They are consumed once by the scorer and discarded.
type ClassificationStats struct {
	Harmless   int
	Malicious  int
	Suspicious int
}

// QueueEntry is a URL waiting for classification because the provider quota
// was exhausted when it was first requested.
type QueueEntry struct {
	URL       string
	DateAdded time.Time
}
