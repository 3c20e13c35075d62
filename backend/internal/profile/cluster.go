package profile

import (
	"context"

	"tastegraph/backend/internal/constants"
	"tastegraph/backend/internal/graph"
	apperrors "tastegraph/backend/pkg/errors"
)

// TasteClusterFor looks up the user's precomputed community id and
// summarizes the community's top non-generic categories. A missing user or
// a null/non-integer community id is a hard "no data" (nil result, no
// error): the summary cannot even be attempted. An empty summary with a
// valid id is still returned, since the id alone is meaningful.
func (o *Orchestrator) TasteClusterFor(ctx context.Context, userID string) (*TasteCluster, error) {
	communityID, err := o.repo.CommunityID(ctx, userID)
	if err != nil {
		if apperrors.IsUserNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if communityID == nil {
		return nil, nil
	}

	counts, err := o.repo.CommunityCategoryCounts(ctx, *communityID, GenericCategoryList(), constants.TopClusterCategories)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []graph.CategoryCount{}
	}

	return &TasteCluster{
		CommunityID:   *communityID,
		TopCategories: counts,
	}, nil
}
