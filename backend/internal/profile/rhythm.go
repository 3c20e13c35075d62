package profile

import (
	"context"

	"go.uber.org/zap"
)

// ReviewRhythmFor computes the user's 7x24 review heatmap. Reviews without
// a timestamp never reach the matrix, so the cell sum always equals the
// user's count of dated reviews.
func (o *Orchestrator) ReviewRhythmFor(ctx context.Context, userID string) (*ReviewRhythm, error) {
	buckets, err := o.repo.ReviewTimeBuckets(ctx, userID)
	if err != nil {
		return nil, err
	}

	rhythm := &ReviewRhythm{}
	for _, b := range buckets {
		if b.Day < 1 || b.Day > 7 || b.Hour < 0 || b.Hour > 23 {
			o.logger.Warn("unexpected time bucket from store, skipping",
				zap.String("user_id", userID),
				zap.Int("day", b.Day),
				zap.Int("hour", b.Hour),
			)
			continue
		}
		rhythm.Counts[b.Day-1][b.Hour] += b.Count
		rhythm.Total += b.Count
	}

	// Zero matrix is a valid "no data" value; callers check Total.
	return rhythm, nil
}
