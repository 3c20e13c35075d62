package graph

import (
	"context"
	"fmt"

	apperrors "tastegraph/backend/pkg/errors"
)

// ============================================================================
// User Operations
// ============================================================================

// CommunityID returns the user's precomputed community id (the clusterId
// property written by the offline community-detection job). The result is
// nil when the user exists but the property is null or not integer-typed;
// a missing user yields ErrGraphUserNotFound.
func (r *Repository) CommunityID(ctx context.Context, userID string) (*int64, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})
		RETURN u.clusterId AS clusterId
		LIMIT 1
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch community id: %w", err)
	}

	record, err := single(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to read community id: %w", err)
	}
	if record == nil {
		return nil, apperrors.NewGraphUserNotFound(userID)
	}

	return getNullableIntFromRecord(record, "clusterId"), nil
}

// CentralityScore returns the user's precomputed graph centrality score
// (the pagerankScore property written by the offline centrality job).
// nil means the user exists but was never scored; a missing user yields
// ErrGraphUserNotFound.
func (r *Repository) CentralityScore(ctx context.Context, userID string) (*float64, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})
		RETURN u.pagerankScore AS pagerankScore
		LIMIT 1
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch centrality score: %w", err)
	}

	record, err := single(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to read centrality score: %w", err)
	}
	if record == nil {
		return nil, apperrors.NewGraphUserNotFound(userID)
	}

	return getNullableFloat64FromRecord(record, "pagerankScore"), nil
}

// CommunityCategoryCounts counts reviewed categories across every user in
// the given community, excluding the supplied category ids, and returns the
// top `limit` by count descending.
func (r *Repository) CommunityCategoryCounts(ctx context.Context, communityID int64, exclude []string, limit int) ([]CategoryCount, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {clusterId: $communityID})-[:WROTE]->(:Review)-[:REVIEWS]->(:Business)-[:IN_CATEGORY]->(c:Category)
		WHERE NOT c.category_id IN $exclude
		RETURN c.category_id AS category, count(c) AS count
		ORDER BY count DESC
		LIMIT $limit
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"communityID": communityID,
		"exclude":     exclude,
		"limit":       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch community category counts: %w", err)
	}

	var counts []CategoryCount
	for result.Next(ctx) {
		record := result.Record()
		counts = append(counts, CategoryCount{
			Category: getStringFromRecord(record, "category"),
			Count:    getIntFromRecord(record, "count"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read community category counts: %w", err)
	}

	return counts, nil
}
