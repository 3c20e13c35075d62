package graph

import (
	"context"
	"fmt"
)

// ============================================================================
// Business Operations
// ============================================================================

// CategoryCountsByUser counts reviews per category reached via the user's
// reviewed businesses. Generic-category filtering happens in the caller so
// the exclusion set lives in exactly one place.
func (r *Repository) CategoryCountsByUser(ctx context.Context, userID string) ([]CategoryCount, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})-[:WROTE]->(:Review)-[:REVIEWS]->(b:Business)-[:IN_CATEGORY]->(c:Category)
		RETURN c.category_id AS categoryId, count(c) AS categoryCount
		ORDER BY categoryCount DESC
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category counts: %w", err)
	}

	var counts []CategoryCount
	for result.Next(ctx) {
		record := result.Record()
		counts = append(counts, CategoryCount{
			Category: getStringFromRecord(record, "categoryId"),
			Count:    getIntFromRecord(record, "categoryCount"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category counts: %w", err)
	}

	return counts, nil
}

// ReviewedBusinessIDs returns the distinct set of businesses the user has reviewed.
func (r *Repository) ReviewedBusinessIDs(ctx context.Context, userID string) ([]string, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})-[:WROTE]->(:Review)-[:REVIEWS]->(b:Business)
		RETURN DISTINCT b.business_id AS businessId
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviewed businesses: %w", err)
	}

	var ids []string
	for result.Next(ctx) {
		if id := getStringFromRecord(result.Record(), "businessId"); id != "" {
			ids = append(ids, id)
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviewed businesses: %w", err)
	}

	return ids, nil
}

// BusinessCategories returns the category ids of a single business.
func (r *Repository) BusinessCategories(ctx context.Context, businessID string) ([]string, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (b:Business {business_id: $businessID})-[:IN_CATEGORY]->(c:Category)
		RETURN c.category_id AS categoryId
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"businessID": businessID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business categories: %w", err)
	}

	var categories []string
	for result.Next(ctx) {
		if cat := getStringFromRecord(result.Record(), "categoryId"); cat != "" {
			categories = append(categories, cat)
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read business categories: %w", err)
	}

	return categories, nil
}

// GetBusinessDetails fetches the live attributes of one business.
// Returns nil when the business does not exist.
func (r *Repository) GetBusinessDetails(ctx context.Context, businessID string) (*BusinessDetails, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (b:Business {business_id: $businessID})
		OPTIONAL MATCH (b)-[:IN_CATEGORY]->(c:Category)
		RETURN b.business_id AS businessId,
		       b.name AS name,
		       b.avgStar AS avgStar,
		       b.review_count AS reviewCount,
		       collect(DISTINCT c.category_id) AS categories
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"businessID": businessID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business details: %w", err)
	}

	record, err := single(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to read business details: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	return &BusinessDetails{
		BusinessID:  getStringFromRecord(record, "businessId"),
		Name:        getStringFromRecord(record, "name"),
		AvgRating:   getFloat64FromRecord(record, "avgStar"),
		ReviewCount: getIntFromRecord(record, "reviewCount"),
		Categories:  getStringSliceFromRecord(record, "categories"),
	}, nil
}

// GemCandidates returns businesses the user reviewed that currently have
// more than currentThreshold reviews, together with the snapshot count of
// reviews the business had at or before the user's own review date.
// Obscurity filtering and growth ranking happen in the caller.
// An index on Review.date is recommended for the point-in-time subquery.
func (r *Repository) GemCandidates(ctx context.Context, userID string, currentThreshold int) ([]GemCandidate, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})-[:WROTE]->(r:Review)-[:REVIEWS]->(b:Business)
		WHERE b.review_count > $currentThreshold
		CALL {
			WITH b, r
			MATCH (b)<-[:REVIEWS]-(r2:Review)
			WHERE r2.date <= r.date
			RETURN count(r2) AS reviewsAtTime
		}
		RETURN b.business_id AS businessId,
		       b.name AS businessName,
		       datetime(replace(r.date, ' ', 'T')) AS userReviewDate,
		       reviewsAtTime,
		       b.review_count AS currentReviewCount
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID":           userID,
		"currentThreshold": currentThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gem candidates: %w", err)
	}

	var candidates []GemCandidate
	for result.Next(ctx) {
		record := result.Record()
		candidates = append(candidates, GemCandidate{
			BusinessID:    getStringFromRecord(record, "businessId"),
			Name:          getStringFromRecord(record, "businessName"),
			ReviewDate:    getTimeFromRecord(record, "userReviewDate"),
			SnapshotCount: getIntFromRecord(record, "reviewsAtTime"),
			CurrentCount:  getIntFromRecord(record, "currentReviewCount"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gem candidates: %w", err)
	}

	return candidates, nil
}
