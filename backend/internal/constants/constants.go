package constants

// Word signature constants
const (
	// MaxSignatureReviews caps how many of the user's most recent reviews
	// are fed into the word signature pipeline
	MaxSignatureReviews = 5000

	// TopSignatureTerms is the number of top-weighted terms returned
	TopSignatureTerms = 25
)

// Hidden gem constants
const (
	// GemCurrentPopularityThreshold is the minimum review count a business
	// must have today to count as "popular now"
	GemCurrentPopularityThreshold = 100

	// GemPastObscurityThreshold is the exclusive upper bound on how many
	// reviews the business had at the time of the user's review
	GemPastObscurityThreshold = 20

	// TopHiddenGems is the number of gems returned, ranked by percent growth
	TopHiddenGems = 5
)

// Taste cluster constants
const (
	// TopClusterCategories is the number of community categories returned
	TopClusterCategories = 10
)

// Recommender constants
const (
	// RecommendationK is the number of recommendations to return
	RecommendationK = 5

	// TopUserCategories is how many of the user's preferred categories
	// are walked for candidates
	TopUserCategories = 5

	// MinReviewCountForRecommendation filters out candidates with too few
	// live reviews to be trustworthy
	MinReviewCountForRecommendation = 10
)
