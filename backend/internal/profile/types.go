package profile

import (
	"context"
	"time"

	"tastegraph/backend/internal/graph"
)

// GraphReader is the read-only query facade the algorithms run against.
// *graph.Repository implements it; tests substitute an in-memory fake.
type GraphReader interface {
	ReviewTimeBuckets(ctx context.Context, userID string) ([]graph.TimeBucket, error)
	CategoryCountsByUser(ctx context.Context, userID string) ([]graph.CategoryCount, error)
	SentimentRows(ctx context.Context, userID string) ([]graph.SentimentRow, error)
	ReviewTexts(ctx context.Context, userID string, limit int) ([]string, error)
	GemCandidates(ctx context.Context, userID string, currentThreshold int) ([]graph.GemCandidate, error)
	CommunityID(ctx context.Context, userID string) (*int64, error)
	CommunityCategoryCounts(ctx context.Context, communityID int64, exclude []string, limit int) ([]graph.CategoryCount, error)
	ReviewedBusinessIDs(ctx context.Context, userID string) ([]string, error)
	BusinessCategories(ctx context.Context, businessID string) ([]string, error)
	GetBusinessDetails(ctx context.Context, businessID string) (*graph.BusinessDetails, error)
	CentralityScore(ctx context.Context, userID string) (*float64, error)
	TotalUsefulVotes(ctx context.Context, userID string) (int64, error)
}

// SignatureTokenizer produces the filtered lemma stream the word signature
// is scored over.
type SignatureTokenizer interface {
	SignatureTokens(text string) ([]string, error)
}

// ReviewRhythm is the dense day-of-week x hour-of-day review count matrix.
// Index 0 of Counts is Monday, matching the store's 1-7 day convention
// shifted down by one. A user with no dated reviews gets the all-zero
// matrix with Total 0, not an absent result.
type ReviewRhythm struct {
	Counts [7][24]int `json:"counts"`
	Total  int        `json:"total"`
}

// CategoryDiversity is the filtered category count mapping plus its Shannon
// entropy in bits.
type CategoryDiversity struct {
	CategoryCounts map[string]int `json:"category_counts"`
	Entropy        float64        `json:"entropy"`
}

// YearMood is the average mood score of one calendar year.
type YearMood struct {
	Year int     `json:"year"`
	Mood float64 `json:"mood"`
}

// SignatureTerm is one vocabulary term with its weight against the user's
// combined review document.
type SignatureTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// HiddenGem is a business the user reviewed while it was still obscure.
type HiddenGem struct {
	BusinessID    string    `json:"business_id"`
	Name          string    `json:"name"`
	ReviewDate    time.Time `json:"review_date"`
	SnapshotCount int       `json:"snapshot_count"`
	CurrentCount  int       `json:"current_count"`
	GrowthPct     float64   `json:"growth_pct"`
}

// TasteCluster is the user's community id with the community's top
// non-generic categories. TopCategories may be empty while the id alone is
// still meaningful.
type TasteCluster struct {
	CommunityID   int64                 `json:"community_id"`
	TopCategories []graph.CategoryCount `json:"top_categories"`
}

// Profile is the composite result for one user: up to eight sub-results,
// each independently absent, plus an error map keyed by algorithm name for
// the ones that failed or were unavailable this request.
type Profile struct {
	UserID          string                   `json:"user_id"`
	ReviewRhythm    *ReviewRhythm            `json:"review_rhythm,omitempty"`
	Diversity       *CategoryDiversity       `json:"category_diversity,omitempty"`
	Sentiment       []YearMood               `json:"sentiment_timeline,omitempty"`
	WordSignature   []SignatureTerm          `json:"word_signature,omitempty"`
	HiddenGems      []HiddenGem              `json:"hidden_gems,omitempty"`
	TasteCluster    *TasteCluster            `json:"taste_cluster,omitempty"`
	Recommendations []graph.BusinessDetails  `json:"recommendations,omitempty"`
	Influence       *float64                 `json:"influence_percentile,omitempty"`
	Errors          map[string]string        `json:"errors"`
}

// Algorithm keys used in Profile.Errors and in log fields.
const (
	KeyReviewRhythm    = "review_rhythm"
	KeyDiversity       = "category_diversity"
	KeySentiment       = "sentiment_timeline"
	KeyWordSignature   = "word_signature"
	KeyHiddenGems      = "hidden_gems"
	KeyTasteCluster    = "taste_cluster"
	KeyRecommendations = "recommendations"
	KeyInfluence       = "influence_percentile"
)
