package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuashub/internal/catalog"
	"cuashub/pkg/models"
)

func ratings(t, e, i, d, r int) models.CategoryRatings {
	return models.CategoryRatings{
		Transportability: t, EaseOfUse: e, Interoperability: i, Detection: d, Reliability: r,
	}
}

func engineFixture() *Engine {
	seed := models.SeedFile{
		Products: []models.Product{
			{ID: 1, Name: "AeroSentinel X300"},
			{ID: 2, Name: "HawkNet Mobile"},
			{ID: 3, Name: "Perimeter Owl 40"},
		},
		Reviews: map[string][]models.Review{
			"1": {
				{ID: 101, Author: "John Smith", MilService: "Army", Role: "Operator",
					CategoryRatings: ratings(5, 4, 4, 5, 4), Date: "2025-01-15"},
				{ID: 100, Author: "Maria Lopez", MilService: "Navy", Role: "Technician",
					CategoryRatings: ratings(4, 4, 3, 5, 5), Date: "2024-12-03"},
			},
			"2": {
				{ID: 102, Author: "Dale Ngo", MilService: "Army", Role: "Operator",
					CategoryRatings: ratings(3, 3, 3, 3, 3), Date: "2025-03-20"},
			},
			// product 9 is not in the catalog
			"9": {
				{ID: 103, Author: "Ghost Reviewer", MilService: "Air Force", Role: "Analyst",
					CategoryRatings: ratings(2, 2, 2, 2, 2), Date: "2025-05-09"},
			},
		},
	}
	return NewEngine(catalog.NewStore(seed))
}

func TestProductRatings(t *testing.T) {
	e := engineFixture()

	t.Run("averages rounded to one decimal", func(t *testing.T) {
		got := e.ProductRatings(1)
		assert.Equal(t, 4.5, got.Transportability)
		assert.Equal(t, 4.0, got.EaseOfUse)
		assert.Equal(t, 3.5, got.Interoperability)
		assert.Equal(t, 5.0, got.Detection)
		assert.Equal(t, 4.5, got.Reliability)
		assert.Equal(t, 2, got.Count)
	})

	t.Run("overall is the rounded mean of the rounded category averages", func(t *testing.T) {
		got := e.ProductRatings(1)
		// (4.5 + 4.0 + 3.5 + 5.0 + 4.5) / 5 = 4.3
		assert.Equal(t, 4.3, got.Overall)
	})

	t.Run("no reviews yields all zeros", func(t *testing.T) {
		got := e.ProductRatings(3)
		assert.Equal(t, RatingSummary{}, got)
	})

	t.Run("unknown product behaves like zero reviews", func(t *testing.T) {
		assert.Equal(t, RatingSummary{}, e.ProductRatings(42))
	})
}

func TestRound1HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 4.3, round1(4.25))
	assert.Equal(t, -4.3, round1(-4.25))
	assert.Equal(t, 4.3, round1(4.3333))
	assert.Equal(t, 0.0, round1(0))
}

func TestGlobalRatings(t *testing.T) {
	e := engineFixture()
	got := e.GlobalRatings()

	// 4 reviews across all products, orphaned product included
	assert.Equal(t, 3.5, got.Transportability) // (5+4+3+2)/4
	assert.Equal(t, 3.3, got.EaseOfUse)        // 13/4 = 3.25 -> 3.3
	assert.Equal(t, 3.0, got.Interoperability) // 12/4
	assert.Equal(t, 3.8, got.Detection)        // 15/4
	assert.Equal(t, 3.5, got.Reliability)      // 14/4

	t.Run("empty catalog", func(t *testing.T) {
		empty := NewEngine(catalog.NewStore(models.SeedFile{}))
		assert.Equal(t, CategoryAverages{}, empty.GlobalRatings())
	})
}

func TestTalliesFirstSeenOrder(t *testing.T) {
	e := engineFixture()

	t.Run("by branch", func(t *testing.T) {
		got := e.ReviewsByBranch()
		require.Len(t, got, 3)
		assert.Equal(t, KeyCount{Key: "Army", Count: 2}, got[0])
		assert.Equal(t, KeyCount{Key: "Navy", Count: 1}, got[1])
		assert.Equal(t, KeyCount{Key: "Air Force", Count: 1}, got[2])
	})

	t.Run("by role", func(t *testing.T) {
		got := e.ReviewsByRole()
		require.Len(t, got, 3)
		assert.Equal(t, "Operator", got[0].Key)
		assert.Equal(t, 2, got[0].Count)
	})
}

func TestRecentReviews(t *testing.T) {
	e := engineFixture()

	t.Run("most recent first with product names attached", func(t *testing.T) {
		got := e.RecentReviews(10)
		require.Len(t, got, 4)
		assert.Equal(t, int64(103), got[0].ID)
		assert.Equal(t, "Unknown Product", got[0].ProductName)
		assert.Equal(t, int64(102), got[1].ID)
		assert.Equal(t, "HawkNet Mobile", got[1].ProductName)
		assert.Equal(t, int64(101), got[2].ID)
		assert.Equal(t, int64(100), got[3].ID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		assert.Len(t, e.RecentReviews(2), 2)
	})

	t.Run("non-positive limit defaults to 10", func(t *testing.T) {
		assert.Len(t, e.RecentReviews(0), 4)
		assert.Len(t, e.RecentReviews(-3), 4)
	})
}

func TestFilteredWords(t *testing.T) {
	seed := models.SeedFile{
		Products: []models.Product{{ID: 1, Name: "AeroSentinel X300"}},
		Reviews: map[string][]models.Review{
			"1": {
				{ID: 1, AdditionalComments: models.CategoryComments{
					Transportability: "The drone is fast and reliable",
				}},
				{ID: 2, AdditionalComments: models.CategoryComments{
					Reliability: "Very reliable and fast drone.",
				}},
			},
		},
	}
	e := NewEngine(catalog.NewStore(seed))

	got := e.FilteredWords()
	require.GreaterOrEqual(t, len(got), 3)

	// ties break count desc, then alphabetically
	assert.Equal(t, WordCount{Word: "drone", Count: 2}, got[0])
	assert.Equal(t, WordCount{Word: "fast", Count: 2}, got[1])
	assert.Equal(t, WordCount{Word: "reliable", Count: 2}, got[2])

	for _, wc := range got {
		assert.False(t, stopWords[wc.Word], "stop word %q leaked through", wc.Word)
		assert.Greater(t, len(wc.Word), 2)
	}
}

func TestFilteredWordsTopTwenty(t *testing.T) {
	comments := models.CategoryComments{
		Transportability: "alpha bravo charlie delta echo foxtrot golf hotel india juliett",
		EaseOfUse:        "kilo lima mike november oscar papa quebec romeo sierra tango",
		Interoperability: "uniform victor whiskey xray yankee zulu",
	}
	seed := models.SeedFile{
		Products: []models.Product{{ID: 1, Name: "X"}},
		Reviews:  map[string][]models.Review{"1": {{ID: 1, AdditionalComments: comments}}},
	}
	e := NewEngine(catalog.NewStore(seed))

	got := e.FilteredWords()
	assert.Len(t, got, 20)
	assert.Equal(t, "alpha", got[0].Word, "equal counts fall back to alphabetical order")
}

func TestStripNonWord(t *testing.T) {
	assert.Equal(t, "drone", stripNonWord("drone."))
	assert.Equal(t, "c2ready", stripNonWord("c2-ready!"))
	assert.Equal(t, "under_score", stripNonWord("under_score"))
	assert.Equal(t, "", stripNonWord("--"))
}
