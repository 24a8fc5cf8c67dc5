package linkcheck

import (
	"math"
	"secondchance/pkg/domain"
)

// Score maps engine counters to a score of at most 100. Malicious detections
// weigh twice as much as suspicious ones. The result is not clamped from below.
func Score(harmless, malicious, suspicious int) int {
	raw := 100 * float64(harmless-2*malicious-suspicious) / float64(harmless+1)

	return int(math.Round(raw))
}

// Classify builds the verdict for host from the provider statistics.
func Classify(host string, stats domain.ClassificationStats) domain.Verdict {
	score := Score(stats.Harmless, stats.Malicious, stats.Suspicious)

	return domain.Verdict{
		URL:     host,
		Score:   score,
		Safe:    score > domain.SafeScoreThreshold,
		Success: true,
	}
}
