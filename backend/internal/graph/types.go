package graph

import "time"

// TimeBucket is one (day-of-week, hour-of-day) review count.
// Day follows the Neo4j convention: 1 = Monday through 7 = Sunday.
type TimeBucket struct {
	Day   int
	Hour  int
	Count int
}

// CategoryCount pairs a category id with a review count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SentimentRow carries the per-review fields needed for the mood timeline.
// Rows with a null date, stars or polarity are filtered out in the query.
type SentimentRow struct {
	Year     int
	Stars    float64
	Polarity float64
}

// GemCandidate is a business the user reviewed that is popular today,
// together with the point-in-time review count at the user's review date.
type GemCandidate struct {
	BusinessID    string
	Name          string
	ReviewDate    time.Time
	SnapshotCount int
	CurrentCount  int
}

// BusinessDetails holds the live attributes of a business candidate.
type BusinessDetails struct {
	BusinessID  string   `json:"business_id"`
	Name        string   `json:"name"`
	AvgRating   float64  `json:"avg_rating"`
	ReviewCount int      `json:"review_count"`
	Categories  []string `json:"categories"`
}
