package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ============================================================================
// Review Operations
// ============================================================================

// ReviewTimeBuckets returns the user's review counts bucketed by
// (day-of-week, hour-of-day), skipping reviews without a timestamp.
// Review.date is stored as an ISO-8601-compatible string with a space
// separator, hence the replace() before datetime().
func (r *Repository) ReviewTimeBuckets(ctx context.Context, userID string) ([]TimeBucket, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})-[:WROTE]->(r:Review)
		WHERE r.date IS NOT NULL
		WITH datetime(replace(r.date, ' ', 'T')) AS reviewDateTime
		RETURN reviewDateTime.dayOfWeek AS dayOfWeek,
		       reviewDateTime.hour AS hour,
		       count(*) AS reviewCount
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review time buckets: %w", err)
	}

	var buckets []TimeBucket
	for result.Next(ctx) {
		record := result.Record()
		buckets = append(buckets, TimeBucket{
			Day:   getIntFromRecord(record, "dayOfWeek"),
			Hour:  getIntFromRecord(record, "hour"),
			Count: getIntFromRecord(record, "reviewCount"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read review time buckets: %w", err)
	}

	return buckets, nil
}

// SentimentRows returns (year, stars, polarity) for every review of the user
// that carries all three fields. Rows missing any field are excluded in the
// query rather than erroring the whole computation.
func (r *Repository) SentimentRows(ctx context.Context, userID string) ([]SentimentRow, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})-[:WROTE]->(r:Review)
		WHERE r.date IS NOT NULL AND r.stars IS NOT NULL AND r.polarity IS NOT NULL
		WITH datetime(replace(r.date, ' ', 'T')).year AS year,
		     r.stars AS stars,
		     r.polarity AS polarity
		RETURN year, stars, polarity
		ORDER BY year
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sentiment rows: %w", err)
	}

	var rows []SentimentRow
	for result.Next(ctx) {
		record := result.Record()
		rows = append(rows, SentimentRow{
			Year:     getIntFromRecord(record, "year"),
			Stars:    getFloat64FromRecord(record, "stars"),
			Polarity: getFloat64FromRecord(record, "polarity"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sentiment rows: %w", err)
	}

	return rows, nil
}

// ReviewTexts returns the text of the user's most recent reviews, newest
// first, capped at limit.
func (r *Repository) ReviewTexts(ctx context.Context, userID string, limit int) ([]string, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})-[:WROTE]->(r:Review)
		WHERE r.text IS NOT NULL AND r.text <> ''
		RETURN r.text AS text
		ORDER BY r.date DESC
		LIMIT $limit
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
		"limit":  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review texts: %w", err)
	}

	var texts []string
	for result.Next(ctx) {
		if text := getStringFromRecord(result.Record(), "text"); text != "" {
			texts = append(texts, text)
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read review texts: %w", err)
	}

	return texts, nil
}

// TotalUsefulVotes sums the usefulness votes across the user's reviews.
// A user with no votes gets 0, which is a valid value, not an error.
func (r *Repository) TotalUsefulVotes(ctx context.Context, userID string) (int64, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (u:User {user_id: $userID})-[:WROTE]->(r:Review)
		WHERE r.useful > 0
		RETURN sum(r.useful) AS totalUsefulVotes
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch total useful votes: %w", err)
	}

	record, err := single(ctx, result)
	if err != nil {
		return 0, fmt.Errorf("failed to read total useful votes: %w", err)
	}
	if record == nil {
		return 0, nil
	}

	if total := getNullableIntFromRecord(record, "totalUsefulVotes"); total != nil {
		return *total, nil
	}
	return 0, nil
}

// single consumes at most one record; nil means the result was empty.
func single(ctx context.Context, result neo4j.ResultWithContext) (*neo4j.Record, error) {
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return result.Record(), nil
}
