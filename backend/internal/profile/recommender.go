package profile

import (
	"context"
	"sort"

	"tastegraph/backend/internal/constants"
	"tastegraph/backend/internal/graph"
)

// RecommendationsFor recommends up to K businesses the user has not
// reviewed, drawn from the precomputed popularity lists of their top
// non-generic preferred categories. If the preference tally is empty after
// filtering, the result is empty: there is deliberately no fallback to
// global popularity. Output order is deterministic: categories by
// preference count descending, and within a category, popularity-list
// order as given.
func (o *Orchestrator) RecommendationsFor(ctx context.Context, userID string) ([]graph.BusinessDetails, error) {
	popularity, err := o.store.CategoryPopularity()
	if err != nil {
		return nil, err
	}

	reviewedIDs, err := o.repo.ReviewedBusinessIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	reviewed := make(map[string]struct{}, len(reviewedIDs))
	for _, id := range reviewedIDs {
		reviewed[id] = struct{}{}
	}

	// Tally category preferences across the user's reviewed businesses,
	// remembering first-seen order so ties rank deterministically.
	prefs := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, businessID := range reviewedIDs {
		categories, err := o.repo.BusinessCategories(ctx, businessID)
		if err != nil {
			return nil, err
		}
		for _, category := range categories {
			if IsGeneric(category) {
				continue
			}
			if _, seen := firstSeen[category]; !seen {
				firstSeen[category] = len(firstSeen)
			}
			prefs[category]++
		}
	}
	if len(prefs) == 0 {
		return nil, nil
	}

	topCategories := make([]string, 0, len(prefs))
	for category := range prefs {
		topCategories = append(topCategories, category)
	}
	sort.SliceStable(topCategories, func(i, j int) bool {
		ci, cj := prefs[topCategories[i]], prefs[topCategories[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[topCategories[i]] < firstSeen[topCategories[j]]
	})
	if len(topCategories) > constants.TopUserCategories {
		topCategories = topCategories[:constants.TopUserCategories]
	}

	var recommendations []graph.BusinessDetails
	selected := make(map[string]struct{})
	for _, category := range topCategories {
		businesses, ok := popularity.TopBusinesses(category)
		if !ok {
			continue
		}
		for _, businessID := range businesses {
			if _, already := reviewed[businessID]; already {
				continue
			}
			if _, already := selected[businessID]; already {
				continue
			}

			details, err := o.repo.GetBusinessDetails(ctx, businessID)
			if err != nil {
				return nil, err
			}
			if details == nil {
				continue
			}
			if details.ReviewCount < constants.MinReviewCountForRecommendation {
				continue
			}

			nonGeneric := make([]string, 0, len(details.Categories))
			for _, cat := range details.Categories {
				if !IsGeneric(cat) {
					nonGeneric = append(nonGeneric, cat)
				}
			}
			details.Categories = nonGeneric

			selected[businessID] = struct{}{}
			recommendations = append(recommendations, *details)
			if len(recommendations) >= constants.RecommendationK {
				return recommendations, nil
			}
		}
	}

	return recommendations, nil
}
