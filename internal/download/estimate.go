package download

import "github.com/streamvault/streamvault-cli/internal/domain"

// gbPerHour approximates 1080p video at 6 Mbps. Deliberately rough: the
// estimate only backs the pre-download storage warning.
const gbPerHour = 2.65

// TotalSeconds sums the highlight durations in whole seconds. Malformed
// durations contribute nothing.
func TotalSeconds(highlights []domain.Highlight) int {
	total := 0
	for _, h := range highlights {
		total += domain.DurationSeconds(h.Duration)
	}
	return total
}

// GBForSeconds converts a duration total into the storage estimate, in
// gigabytes.
func GBForSeconds(secs int) float64 {
	return float64(secs) / 3600 * gbPerHour
}

// EstimateGB returns the approximate storage the given highlights need,
// in gigabytes.
func EstimateGB(highlights []domain.Highlight) float64 {
	return GBForSeconds(TotalSeconds(highlights))
}
