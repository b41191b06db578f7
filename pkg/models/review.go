package models

import (
	"math/rand"
	"time"
)

// CategoryRatings holds the five fixed rating slots. A value of 0 means the
// category was skipped rather than rated; submitted ratings are 1-5.
type CategoryRatings struct {
	Transportability int `json:"transportability"`
	EaseOfUse        int `json:"easeOfUse"`
	Interoperability int `json:"interoperability"`
	Detection        int `json:"detection"`
	Reliability      int `json:"reliability"`
}

// CategoryComments mirrors CategoryRatings with optional free-text per slot.
type CategoryComments struct {
	Transportability string `json:"transportability,omitempty"`
	EaseOfUse        string `json:"easeOfUse,omitempty"`
	Interoperability string `json:"interoperability,omitempty"`
	Detection        string `json:"detection,omitempty"`
	Reliability      string `json:"reliability,omitempty"`
}

// Values returns the comment texts in slot order, empty entries included.
func (c CategoryComments) Values() []string {
	return []string{c.Transportability, c.EaseOfUse, c.Interoperability, c.Detection, c.Reliability}
}

type Review struct {
	ID                 int64            `json:"id"`
	Author             string           `json:"author"`
	MilService         string           `json:"milService"`
	Role               string           `json:"role"`
	OtherUASSystems    string           `json:"otherUASSystems,omitempty"`
	CategoryRatings    CategoryRatings  `json:"categoryRatings"`
	AdditionalComments CategoryComments `json:"additionalComments"`
	Date               string           `json:"date"`
}

// ReviewDateLayout is the format reviews are stamped with on submission.
// Seed data may also carry M/D/YYYY dates from older exports.
const ReviewDateLayout = "2006-01-02"

var reviewDateLayouts = []string{ReviewDateLayout, "1/2/2006", time.RFC3339}

// ParseReviewDate parses a review date string. The zero time is returned for
// anything unparseable so that malformed dates sort last, never fail.
func ParseReviewDate(s string) time.Time {
	for _, layout := range reviewDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// NewReviewID builds a time-based identifier with a random tiebreaker so two
// reviews submitted in the same millisecond do not collide.
func NewReviewID() int64 {
	return time.Now().UnixMilli()*1000 + rand.Int63n(1000)
}
