package live

import "time"

// ReviewEvent announces a freshly submitted review.
type ReviewEvent struct {
	Type        string    `json:"type"` // "review.created"
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Author      string    `json:"author"` // obfuscated display form
	At          time.Time `json:"at"`
}

// Snapshot is the periodic dashboard broadcast.
type Snapshot struct {
	Type            string    `json:"type"` // "dashboard.snapshot"
	TotalProducts   int       `json:"total_products"`
	TotalReviews    int       `json:"total_reviews"`
	CurrentVisitors int       `json:"current_visitors"`
	TodayVisitors   int       `json:"today_visitors"`
	WeeklyVisitors  int       `json:"weekly_visitors"`
	At              time.Time `json:"at"`
}
