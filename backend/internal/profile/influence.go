package profile

import (
	"context"

	apperrors "tastegraph/backend/pkg/errors"
)

// InfluenceFor computes the user's overall influence percentile: the rank
// percentile of their composite metric (centrality percentile times
// usefulness-vote percentile, both as fractions) within the precomputed
// composite distribution, on a 0-100 scale. A user without a centrality
// score has no result; zero usefulness votes is a valid value.
func (o *Orchestrator) InfluenceFor(ctx context.Context, userID string) (*float64, error) {
	ranks, err := o.store.RankDistributions()
	if err != nil {
		return nil, err
	}

	centrality, err := o.repo.CentralityScore(ctx, userID)
	if err != nil {
		if apperrors.IsUserNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if centrality == nil {
		return nil, nil
	}

	usefulVotes, err := o.repo.TotalUsefulVotes(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Empty reference populations score 0, not an error.
	centralityPct := ranks.Centrality.PercentileOf(*centrality) / 100.0
	usefulPct := ranks.UsefulVotes.PercentileOf(float64(usefulVotes)) / 100.0
	composite := centralityPct * usefulPct

	if ranks.Composite.Len() == 0 {
		return nil, nil
	}
	influence := ranks.Composite.PercentileOf(composite)
	return &influence, nil
}
