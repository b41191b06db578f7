package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuashub/pkg/models"
)

var testProducts = []models.Product{
	{ID: 1, Name: "AeroSentinel X300", Manufacturer: "Vanguard Defense", Category: "Fixed Site"},
	{ID: 2, Name: "HawkNet Mobile", Manufacturer: "Talon Systems", Category: "Mobile"},
	{ID: 3, Name: "Talon Shield H2", Manufacturer: "Talon Systems", Category: "Handheld"},
}

// rateAll marks every category so only the experience gate remains.
func rateAll(w *Wizard) {
	for _, cat := range w.Categories() {
		w.SetRating(cat.ID, 4)
	}
}

func TestIntroGate(t *testing.T) {
	t.Run("blank system name blocks", func(t *testing.T) {
		w := New(testProducts, nil)
		assert.False(t, w.CanProceedToReview())
		assert.ErrorIs(t, w.Start(), ErrIncomplete)
		assert.Equal(t, StepIntro, w.Step(), "blocked transition is a no-op")
	})

	t.Run("whitespace-only name blocks", func(t *testing.T) {
		w := New(testProducts, nil)
		w.SystemName = "   "
		assert.False(t, w.CanProceedToReview())
	})

	t.Run("selecting a product unblocks", func(t *testing.T) {
		w := New(testProducts, nil)
		w.SelectProduct(testProducts[0])
		require.True(t, w.CanProceedToReview())
		require.NoError(t, w.Start())
		assert.Equal(t, StepReview, w.Step())
	})

	t.Run("prefilled name always passes", func(t *testing.T) {
		w := NewForProduct(testProducts, "HawkNet Mobile", nil)
		assert.True(t, w.CanProceedToReview())
		assert.NoError(t, w.Start())
	})
}

func TestFilteredProducts(t *testing.T) {
	w := New(testProducts, nil)

	t.Run("empty term returns everything", func(t *testing.T) {
		assert.Len(t, w.FilteredProducts(), 3)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		w.SystemName = "hawknet"
		got := w.FilteredProducts()
		require.Len(t, got, 1)
		assert.Equal(t, "HawkNet Mobile", got[0].Name)
	})

	t.Run("matches manufacturer", func(t *testing.T) {
		w.SystemName = "talon systems"
		assert.Len(t, w.FilteredProducts(), 2)
	})

	t.Run("matches category", func(t *testing.T) {
		w.SystemName = "handheld"
		assert.Len(t, w.FilteredProducts(), 1)
	})
}

func TestRatingAndNotApplicableExclusive(t *testing.T) {
	w := NewForProduct(testProducts, "AeroSentinel X300", nil)
	require.NoError(t, w.Start())

	t.Run("rating clears NA", func(t *testing.T) {
		w.ToggleNotApplicable("reliability")
		w.SetRating("reliability", 5)
		cat := findCategory(t, w, "reliability")
		assert.Equal(t, 5, cat.Rating)
		assert.False(t, cat.NotApplicable)
	})

	t.Run("NA clears rating", func(t *testing.T) {
		w.SetRating("ease_of_use", 3)
		w.ToggleNotApplicable("ease_of_use")
		cat := findCategory(t, w, "ease_of_use")
		assert.Equal(t, 0, cat.Rating)
		assert.True(t, cat.NotApplicable)
	})

	t.Run("toggling NA off leaves category unrated", func(t *testing.T) {
		w.ToggleNotApplicable("ease_of_use")
		cat := findCategory(t, w, "ease_of_use")
		assert.Equal(t, 0, cat.Rating)
		assert.False(t, cat.NotApplicable)
	})

	t.Run("out-of-range ratings ignored", func(t *testing.T) {
		w.SetRating("detection_effectiveness", 0)
		w.SetRating("detection_effectiveness", 6)
		w.SetRating("detection_effectiveness", -1)
		assert.Equal(t, 0, findCategory(t, w, "detection_effectiveness").Rating)
	})

	t.Run("unknown category id ignored", func(t *testing.T) {
		w.SetRating("stealth", 5)
		w.ToggleNotApplicable("stealth")
		w.SetComment("stealth", "nope")
	})
}

func TestSubmitGate(t *testing.T) {
	t.Run("unrated category blocks", func(t *testing.T) {
		w := NewForProduct(testProducts, "AeroSentinel X300", nil)
		require.NoError(t, w.Start())
		w.CUASExperience = "2 years"

		assert.False(t, w.CanSubmitReview())
		_, err := w.Submit()
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, StepReview, w.Step())
	})

	t.Run("empty experience blocks", func(t *testing.T) {
		w := NewForProduct(testProducts, "AeroSentinel X300", nil)
		require.NoError(t, w.Start())
		rateAll(w)

		assert.False(t, w.CanSubmitReview())
		_, err := w.Submit()
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, StepReview, w.Step(), "state unchanged after blocked submit")
	})

	t.Run("NA counts as answered", func(t *testing.T) {
		w := NewForProduct(testProducts, "AeroSentinel X300", nil)
		require.NoError(t, w.Start())
		for _, cat := range w.Categories() {
			w.ToggleNotApplicable(cat.ID)
		}
		w.CUASExperience = "First deployment"
		assert.True(t, w.CanSubmitReview())
	})

	t.Run("submit from intro blocks", func(t *testing.T) {
		w := NewForProduct(testProducts, "AeroSentinel X300", nil)
		rateAll(w)
		w.CUASExperience = "2 years"
		_, err := w.Submit()
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, StepIntro, w.Step())
	})
}

func TestSubmit(t *testing.T) {
	t.Run("payload assembled and step completes", func(t *testing.T) {
		var got Submission
		w := NewForProduct(testProducts, "AeroSentinel X300", func(s Submission) error {
			got = s
			return nil
		})
		require.NoError(t, w.Start())
		rateAll(w)
		w.SetComment("reliability", "No faults in six months.")
		w.CUASExperience = "  3 years CUAS ops  "
		w.PreviousSystems = "DroneDefender"

		sub, err := w.Submit()
		require.NoError(t, err)
		assert.Equal(t, StepComplete, w.Step())
		assert.Equal(t, "AeroSentinel X300", sub.SystemName)
		assert.Equal(t, "3 years CUAS ops", sub.CUASExperience, "fields are trimmed")
		assert.Equal(t, got, *sub)
		require.Len(t, sub.Categories, 5)
		assert.Equal(t, "No faults in six months.", sub.Categories[4].Comment)
	})

	t.Run("callback error keeps the review step", func(t *testing.T) {
		boom := errors.New("api down")
		w := NewForProduct(testProducts, "AeroSentinel X300", func(Submission) error { return boom })
		require.NoError(t, w.Start())
		rateAll(w)
		w.CUASExperience = "2 years"

		_, err := w.Submit()
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, StepReview, w.Step())
	})

	t.Run("complete is terminal", func(t *testing.T) {
		w := NewForProduct(testProducts, "AeroSentinel X300", nil)
		require.NoError(t, w.Start())
		rateAll(w)
		w.CUASExperience = "2 years"
		_, err := w.Submit()
		require.NoError(t, err)

		assert.ErrorIs(t, w.Start(), ErrIncomplete)
		_, err = w.Submit()
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, StepComplete, w.Step())
	})

	t.Run("nil submit callback is allowed", func(t *testing.T) {
		w := NewForProduct(testProducts, "AeroSentinel X300", nil)
		require.NoError(t, w.Start())
		rateAll(w)
		w.CUASExperience = "2 years"
		_, err := w.Submit()
		assert.NoError(t, err)
	})
}

func findCategory(t *testing.T, w *Wizard, id string) Category {
	t.Helper()
	for _, cat := range w.Categories() {
		if cat.ID == id {
			return cat
		}
	}
	t.Fatalf("category %q not found", id)
	return Category{}
}
