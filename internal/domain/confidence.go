package domain

// Band is a coarse confidence bucket used by the confidence meter.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Band thresholds, inclusive lower bounds.
const (
	highBandFloor   = 80.0
	mediumBandFloor = 60.0
)

// ConfidenceBand buckets a confidence percentage.
func ConfidenceBand(confidence float64) Band {
	switch {
	case confidence >= highBandFloor:
		return BandHigh
	case confidence >= mediumBandFloor:
		return BandMedium
	default:
		return BandLow
	}
}
