package profile

import (
	"context"
	"sort"

	"tastegraph/backend/internal/constants"
	"tastegraph/backend/internal/graph"
)

// HiddenGemsFor surfaces businesses the user reviewed while they were still
// obscure and that later became popular: currently above the popularity
// threshold, with a point-in-time review count strictly between 0 and the
// obscurity threshold at the user's review date. Ranked by percent growth.
func (o *Orchestrator) HiddenGemsFor(ctx context.Context, userID string) ([]HiddenGem, error) {
	candidates, err := o.repo.GemCandidates(ctx, userID, constants.GemCurrentPopularityThreshold)
	if err != nil {
		return nil, err
	}
	return RankGems(candidates, constants.GemPastObscurityThreshold, constants.TopHiddenGems), nil
}

// RankGems filters candidates to the obscurity window and returns the top
// `limit` by percent growth descending. A snapshot count of 0 signals a
// data anomaly rather than an early discovery and is excluded.
func RankGems(candidates []graph.GemCandidate, pastThreshold, limit int) []HiddenGem {
	var gems []HiddenGem
	for _, c := range candidates {
		if c.SnapshotCount <= 0 || c.SnapshotCount >= pastThreshold {
			continue
		}
		growth := float64(c.CurrentCount-c.SnapshotCount) / float64(c.SnapshotCount) * 100
		gems = append(gems, HiddenGem{
			BusinessID:    c.BusinessID,
			Name:          c.Name,
			ReviewDate:    c.ReviewDate,
			SnapshotCount: c.SnapshotCount,
			CurrentCount:  c.CurrentCount,
			GrowthPct:     growth,
		})
	}

	sort.SliceStable(gems, func(i, j int) bool { return gems[i].GrowthPct > gems[j].GrowthPct })
	if len(gems) > limit {
		gems = gems[:limit]
	}
	return gems
}
