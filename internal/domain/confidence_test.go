package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceBand_Boundaries(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Band
	}{
		{0, BandLow},
		{59.9, BandLow},
		{60.0, BandMedium},
		{79.9, BandMedium},
		{80.0, BandHigh},
		{95, BandHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceBand(tt.confidence), "confidence %v", tt.confidence)
	}
}
