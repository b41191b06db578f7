package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDraftJSON = `{
  "categoryRatings": {
    "transportability": 4,
    "easeOfUse": 3,
    "interoperability": 5,
    "detection": 4,
    "reliability": 5
  },
  "additionalComments": {
    "transportability": "Two-person lift, fits in a standard pelican case.",
    "easeOfUse": "Menu layout takes a week to learn."
  },
  "otherUASSystems": "DroneDefender, SkyFence"
}`

func TestParseDraftReview(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		draft, err := ParseDraftReview(validDraftJSON)
		require.NoError(t, err)
		assert.Equal(t, 4, draft.CategoryRatings.Transportability)
		assert.Equal(t, 5, draft.CategoryRatings.Reliability)
		assert.Equal(t, "DroneDefender, SkyFence", draft.OtherUASSystems)
	})

	t.Run("markdown fences tolerated", func(t *testing.T) {
		draft, err := ParseDraftReview("```json\n" + validDraftJSON + "\n```")
		require.NoError(t, err)
		assert.Equal(t, 3, draft.CategoryRatings.EaseOfUse)
	})

	t.Run("bare fences tolerated", func(t *testing.T) {
		_, err := ParseDraftReview("```\n" + validDraftJSON + "\n```")
		assert.NoError(t, err)
	})

	t.Run("prose is a parse failure", func(t *testing.T) {
		_, err := ParseDraftReview("Here is your review! It covers all five categories.")
		assert.Error(t, err)
	})

	t.Run("zero rating rejected", func(t *testing.T) {
		_, err := ParseDraftReview(`{"categoryRatings":{"transportability":0,"easeOfUse":3,"interoperability":3,"detection":3,"reliability":3}}`)
		assert.Error(t, err)
	})

	t.Run("rating above five rejected", func(t *testing.T) {
		_, err := ParseDraftReview(`{"categoryRatings":{"transportability":4,"easeOfUse":6,"interoperability":3,"detection":3,"reliability":3}}`)
		assert.Error(t, err)
	})
}
