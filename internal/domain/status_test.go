package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndicatorFor(t *testing.T) {
	tests := []struct {
		status Status
		tone   Tone
		pulse  bool
	}{
		{StatusConfirmed, TonePositive, false},
		{StatusDetecting, ToneActive, true},
		{StatusFalseAlarm, ToneMuted, false},
		{Status("aftershock"), ToneNeutral, false},
		{Status(""), ToneNeutral, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ind := IndicatorFor(tt.status)
			assert.Equal(t, tt.tone, ind.Tone)
			assert.Equal(t, tt.pulse, ind.Pulse)
			assert.NotEmpty(t, ind.Class)
			assert.NotEmpty(t, ind.Icon)
		})
	}
}

func TestIndicatorFor_DistinctForKnownStatuses(t *testing.T) {
	classes := map[string]Status{}
	for _, s := range []Status{StatusConfirmed, StatusDetecting, StatusFalseAlarm, "unknown"} {
		class := IndicatorFor(s).Class
		prev, dup := classes[class]
		assert.False(t, dup, "%s and %s share class %s", prev, s, class)
		classes[class] = s
	}
}

func TestStatusKnown(t *testing.T) {
	assert.True(t, StatusDetecting.Known())
	assert.True(t, StatusConfirmed.Known())
	assert.True(t, StatusFalseAlarm.Known())
	assert.False(t, Status("CONFIRMED").Known())
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Send Alert", ActionLabel(StatusConfirmed))
	assert.Equal(t, "Monitor", ActionLabel(StatusDetecting))
	assert.Equal(t, "Monitor", ActionLabel(StatusFalseAlarm))
	assert.Equal(t, "Monitor", ActionLabel("whatever"))
}
