package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Deterministic(t *testing.T) {
	a, err := Record(10, 7, period)
	require.NoError(t, err)
	b, err := Record(10, 7, period)
	require.NoError(t, err)

	require.Len(t, a.Snapshots, 11)
	assert.Equal(t, "3s", a.Period)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("recordings differ (-a +b):\n%s", diff)
	}
}

func TestRecord_PassesVerify(t *testing.T) {
	rec, err := Record(60, 3, period)
	require.NoError(t, err)
	assert.NoError(t, Verify(rec))
}

func TestRecord_ZeroTicks(t *testing.T) {
	rec, err := Record(0, 1, 0)
	require.NoError(t, err)
	require.Len(t, rec.Snapshots, 1)
	assert.Equal(t, DefaultPeriod.String(), rec.Period)
}

func TestRecord_NegativeTicks(t *testing.T) {
	_, err := Record(-1, 1, period)
	assert.Error(t, err)
}

func TestVerify_DetectsViolations(t *testing.T) {
	rec, err := Record(3, 9, period)
	require.NoError(t, err)

	rec.Snapshots[2].Events[0].TweetCount -= 100
	rec.Snapshots[3].Ticks = 99

	err = Verify(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot 2")
	assert.Contains(t, err.Error(), "ticks 99 follows 2")
}

func TestVerify_Empty(t *testing.T) {
	assert.Error(t, Verify(Recording{}))
}
