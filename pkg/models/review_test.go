package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReviewDate(t *testing.T) {
	t.Run("iso date", func(t *testing.T) {
		got := ParseReviewDate("2025-01-15")
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("legacy slash date", func(t *testing.T) {
		got := ParseReviewDate("1/15/2025")
		assert.Equal(t, 2025, got.Year())
		assert.Equal(t, time.January, got.Month())
	})

	t.Run("rfc3339", func(t *testing.T) {
		got := ParseReviewDate("2025-01-15T10:30:00Z")
		assert.Equal(t, 15, got.Day())
	})

	t.Run("garbage sorts last via zero time", func(t *testing.T) {
		assert.True(t, ParseReviewDate("yesterday").IsZero())
		assert.True(t, ParseReviewDate("").IsZero())
	})
}

func TestNewReviewID(t *testing.T) {
	before := time.Now().UnixMilli() * 1000
	id := NewReviewID()
	after := (time.Now().UnixMilli() + 1) * 1000

	assert.GreaterOrEqual(t, id, before)
	assert.Less(t, id, after+1000)
}

func TestCategoryCommentsValues(t *testing.T) {
	c := CategoryComments{Transportability: "a", Detection: "d"}
	assert.Equal(t, []string{"a", "", "", "d", ""}, c.Values())
}
