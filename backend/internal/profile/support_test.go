package profile

import (
	"context"
	"strings"

	"tastegraph/backend/internal/artifacts"
	"tastegraph/backend/internal/graph"
)

// Mock implementations for testing

type mockGraphRepo struct {
	timeBuckets    []graph.TimeBucket
	timeBucketsErr error

	categoryCounts    []graph.CategoryCount
	categoryCountsErr error

	sentimentRows    []graph.SentimentRow
	sentimentRowsErr error

	reviewTexts    []string
	reviewTextsErr error

	gemCandidates    []graph.GemCandidate
	gemCandidatesErr error

	communityID     *int64
	communityIDErr  error
	communityCounts []graph.CategoryCount
	communityErr    error

	reviewedIDs    []string
	reviewedIDsErr error

	businessCategories map[string][]string
	businessDetails    map[string]*graph.BusinessDetails
	businessErr        error

	centrality     *float64
	centralityErr  error
	usefulVotes    int64
	usefulVotesErr error
}

func (m *mockGraphRepo) ReviewTimeBuckets(ctx context.Context, userID string) ([]graph.TimeBucket, error) {
	return m.timeBuckets, m.timeBucketsErr
}

func (m *mockGraphRepo) CategoryCountsByUser(ctx context.Context, userID string) ([]graph.CategoryCount, error) {
	return m.categoryCounts, m.categoryCountsErr
}

func (m *mockGraphRepo) SentimentRows(ctx context.Context, userID string) ([]graph.SentimentRow, error) {
	return m.sentimentRows, m.sentimentRowsErr
}

func (m *mockGraphRepo) ReviewTexts(ctx context.Context, userID string, limit int) ([]string, error) {
	if m.reviewTextsErr != nil {
		return nil, m.reviewTextsErr
	}
	if len(m.reviewTexts) > limit {
		return m.reviewTexts[:limit], nil
	}
	return m.reviewTexts, nil
}

func (m *mockGraphRepo) GemCandidates(ctx context.Context, userID string, currentThreshold int) ([]graph.GemCandidate, error) {
	if m.gemCandidatesErr != nil {
		return nil, m.gemCandidatesErr
	}
	var out []graph.GemCandidate
	for _, c := range m.gemCandidates {
		if c.CurrentCount > currentThreshold {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockGraphRepo) CommunityID(ctx context.Context, userID string) (*int64, error) {
	return m.communityID, m.communityIDErr
}

func (m *mockGraphRepo) CommunityCategoryCounts(ctx context.Context, communityID int64, exclude []string, limit int) ([]graph.CategoryCount, error) {
	if m.communityErr != nil {
		return nil, m.communityErr
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, cat := range exclude {
		excluded[cat] = struct{}{}
	}
	var out []graph.CategoryCount
	for _, c := range m.communityCounts {
		if _, skip := excluded[c.Category]; skip {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockGraphRepo) ReviewedBusinessIDs(ctx context.Context, userID string) ([]string, error) {
	return m.reviewedIDs, m.reviewedIDsErr
}

func (m *mockGraphRepo) BusinessCategories(ctx context.Context, businessID string) ([]string, error) {
	if m.businessErr != nil {
		return nil, m.businessErr
	}
	return m.businessCategories[businessID], nil
}

func (m *mockGraphRepo) GetBusinessDetails(ctx context.Context, businessID string) (*graph.BusinessDetails, error) {
	if m.businessErr != nil {
		return nil, m.businessErr
	}
	details, ok := m.businessDetails[businessID]
	if !ok {
		return nil, nil
	}
	// Copy so callers can't mutate the fixture
	copied := *details
	copied.Categories = append([]string(nil), details.Categories...)
	return &copied, nil
}

func (m *mockGraphRepo) CentralityScore(ctx context.Context, userID string) (*float64, error) {
	return m.centrality, m.centralityErr
}

func (m *mockGraphRepo) TotalUsefulVotes(ctx context.Context, userID string) (int64, error) {
	return m.usefulVotes, m.usefulVotesErr
}

// wordTokenizer is a trivial SignatureTokenizer: whitespace split, dropping
// single-character tokens. Keeps signature tests independent of the real
// POS pipeline.
type wordTokenizer struct{}

func (wordTokenizer) SignatureTokens(text string) ([]string, error) {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if len(tok) > 1 {
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

func newTestStore() *artifacts.Store {
	idf := artifacts.NewIDFModel(
		[]string{"sushi", "ramen", "truffle", "truffle fries", "lukewarm"},
		[]float64{1.0, 1.5, 3.0, 4.0, 2.0},
	)
	popularity := artifacts.NewCategoryPopularity(map[string][]string{
		"Sushi": {"b-1", "b-2", "b-3"},
		"Ramen": {"b-4", "b-5"},
	})
	ranks := &artifacts.RankDistributions{
		Centrality:  artifacts.NewDistribution([]float64{0.1, 0.2, 0.3, 0.4}),
		UsefulVotes: artifacts.NewDistribution([]float64{0, 1, 5, 10}),
		Composite:   artifacts.NewDistribution([]float64{0.0, 0.25, 0.5, 1.0}),
	}
	return artifacts.NewStore(idf, popularity, ranks)
}

func newTestOrchestrator(repo GraphReader, store *artifacts.Store) *Orchestrator {
	return NewOrchestrator(repo, store, wordTokenizer{}, 2)
}

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }
