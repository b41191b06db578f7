package stats

import (
	"math"
	"sort"
	"strings"

	"cuashub/pkg/models"
)

// Catalog is the read surface the engine aggregates over. Every method on
// Engine recomputes from scratch; nothing is cached.
type Catalog interface {
	Products() []models.Product
	Product(id int64) (models.Product, bool)
	ReviewsFor(productID int64) []models.Review
	AllReviews() map[int64][]models.Review
	TotalProducts() int
	TotalReviews() int
}

type Engine struct {
	Catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{Catalog: catalog}
}

// CategoryAverages holds the per-category means, each rounded to one decimal.
type CategoryAverages struct {
	Transportability float64 `json:"transportability"`
	EaseOfUse        float64 `json:"easeOfUse"`
	Interoperability float64 `json:"interoperability"`
	Detection        float64 `json:"detection"`
	Reliability      float64 `json:"reliability"`
}

// RatingSummary is a product's aggregated rating card.
type RatingSummary struct {
	CategoryAverages
	Overall float64 `json:"overall"`
	Count   int     `json:"count"`
}

// KeyCount is one entry of an ordered tally. Order is first-seen, which a Go
// map cannot carry, so tallies are returned as slices.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// RecentReview is a review annotated with its resolved product.
type RecentReview struct {
	models.Review
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// round1 rounds half away from zero at one decimal.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func averagesOf(reviews []models.Review) CategoryAverages {
	if len(reviews) == 0 {
		return CategoryAverages{}
	}

	var totals [5]int
	for _, r := range reviews {
		totals[0] += r.CategoryRatings.Transportability
		totals[1] += r.CategoryRatings.EaseOfUse
		totals[2] += r.CategoryRatings.Interoperability
		totals[3] += r.CategoryRatings.Detection
		totals[4] += r.CategoryRatings.Reliability
	}

	n := float64(len(reviews))
	return CategoryAverages{
		Transportability: round1(float64(totals[0]) / n),
		EaseOfUse:        round1(float64(totals[1]) / n),
		Interoperability: round1(float64(totals[2]) / n),
		Detection:        round1(float64(totals[3]) / n),
		Reliability:      round1(float64(totals[4]) / n),
	}
}

// ProductRatings computes a product's per-category averages. Overall is the
// rounded mean of the five already-rounded category averages. Zero reviews
// yield all zeros with count 0.
func (e *Engine) ProductRatings(productID int64) RatingSummary {
	reviews := e.Catalog.ReviewsFor(productID)
	if len(reviews) == 0 {
		return RatingSummary{}
	}

	avg := averagesOf(reviews)
	overall := round1((avg.Transportability + avg.EaseOfUse + avg.Interoperability +
		avg.Detection + avg.Reliability) / 5)

	return RatingSummary{
		CategoryAverages: avg,
		Overall:          overall,
		Count:            len(reviews),
	}
}

// GlobalRatings is the same computation flattened across every product.
func (e *Engine) GlobalRatings() CategoryAverages {
	return averagesOf(e.flatReviews())
}

func (e *Engine) flatReviews() []models.Review {
	all := e.Catalog.AllReviews()
	var out []models.Review
	for _, list := range all {
		out = append(out, list...)
	}
	return out
}

// ReviewsByBranch tallies reviews by the submitter's service branch,
// exact-string grouping, keys in first-seen order.
func (e *Engine) ReviewsByBranch() []KeyCount {
	return e.tally(func(r models.Review) string { return r.MilService })
}

// ReviewsByRole tallies reviews by the submitter's role.
func (e *Engine) ReviewsByRole() []KeyCount {
	return e.tally(func(r models.Review) string { return r.Role })
}

func (e *Engine) tally(key func(models.Review) string) []KeyCount {
	index := make(map[string]int)
	var out []KeyCount
	for _, pr := range e.orderedReviews() {
		k := key(pr.Review)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, KeyCount{Key: k, Count: 1})
	}
	return out
}

// orderedReviews flattens the store's mapping into (product, review) pairs in
// a deterministic order: catalog insertion order first, then any reviews for
// products no longer present, by id.
func (e *Engine) orderedReviews() []RecentReview {
	all := e.Catalog.AllReviews()
	var out []RecentReview

	seen := make(map[int64]bool, len(all))
	for _, p := range e.Catalog.Products() {
		seen[p.ID] = true
		for _, r := range all[p.ID] {
			out = append(out, RecentReview{Review: r, ProductID: p.ID, ProductName: p.Name})
		}
	}

	var orphaned []int64
	for id := range all {
		if !seen[id] {
			orphaned = append(orphaned, id)
		}
	}
	sort.Slice(orphaned, func(i, j int) bool { return orphaned[i] < orphaned[j] })
	for _, id := range orphaned {
		for _, r := range all[id] {
			out = append(out, RecentReview{Review: r, ProductID: id, ProductName: "Unknown Product"})
		}
	}
	return out
}

// RecentReviews returns the newest reviews across the whole catalog, product
// name attached, most recent first. limit <= 0 falls back to 10.
func (e *Engine) RecentReviews(limit int) []RecentReview {
	if limit <= 0 {
		limit = 10
	}

	all := e.orderedReviews()
	sort.SliceStable(all, func(i, j int) bool {
		return models.ParseReviewDate(all[i].Date).After(models.ParseReviewDate(all[j].Date))
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// FilteredWords tallies the non-trivial words across every review's
// per-category comments and returns the top 20. Ties break alphabetically so
// the result is deterministic.
func (e *Engine) FilteredWords() []WordCount {
	counts := make(map[string]int)

	for _, list := range e.Catalog.AllReviews() {
		for _, r := range list {
			for _, comment := range r.AdditionalComments.Values() {
				if comment == "" {
					continue
				}
				for _, word := range strings.Fields(strings.ToLower(comment)) {
					clean := stripNonWord(word)
					if len(clean) <= 2 || stopWords[clean] {
						continue
					}
					counts[clean]++
				}
			}
		}
	}

	out := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})

	if len(out) > 20 {
		out = out[:20]
	}
	return out
}

// stripNonWord drops everything outside [0-9A-Za-z_], the regex \w class.
func stripNonWord(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
