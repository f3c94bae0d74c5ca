package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedEvents(t *testing.T) {
	seed := SeedEvents()
	require.Len(t, seed, 3)
	require.NoError(t, ValidateSeed(seed))

	assert.Equal(t, "Tokyo, Japan", seed[0].Location)
	assert.Equal(t, 87.0, seed[0].Confidence)
	assert.Equal(t, StatusConfirmed, seed[0].Status)
	assert.Equal(t, 139.7, seed[0].Coordinates.Lon())
	assert.Equal(t, 35.7, seed[0].Coordinates.Lat())

	assert.Equal(t, "Los Angeles, CA", seed[1].Location)
	assert.Equal(t, 73.0, seed[1].Confidence)

	assert.Equal(t, "Istanbul, Turkey", seed[2].Location)
	assert.Equal(t, 45.0, seed[2].Confidence)
}

func TestSeedEvents_FreshSlice(t *testing.T) {
	a := SeedEvents()
	a[0].TweetCount = 0
	b := SeedEvents()
	assert.Equal(t, 245, b[0].TweetCount)
}

func TestValidateSeed(t *testing.T) {
	t.Run("empty is valid", func(t *testing.T) {
		assert.NoError(t, ValidateSeed(nil))
	})

	t.Run("collects every problem", func(t *testing.T) {
		err := ValidateSeed([]EventRecord{
			{ID: "a", Confidence: 10},
			{ID: "a", Confidence: 96},
			{ID: "", TweetCount: -1},
			{ID: "b", Confidence: -0.5},
		})
		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, `duplicate id "a"`)
		assert.Contains(t, msg, "confidence 96.00")
		assert.Contains(t, msg, "empty id")
		assert.Contains(t, msg, "negative tweet count")
		assert.Contains(t, msg, "confidence -0.50")
	})

	t.Run("unknown status is allowed", func(t *testing.T) {
		assert.NoError(t, ValidateSeed([]EventRecord{{ID: "x", Status: "aftershock"}}))
	})
}

func TestCloneEvents(t *testing.T) {
	orig := SeedEvents()
	clone := CloneEvents(orig)
	clone[0].TweetCount = 1

	assert.Equal(t, 245, orig[0].TweetCount)
	assert.Nil(t, CloneEvents(nil))
}
