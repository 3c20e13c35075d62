package profile

import (
	"context"
	"sort"
)

// SentimentFor computes the user's mood timeline: the mean mood score per
// calendar year, sorted ascending by year. Reviews missing a date, stars
// or polarity were already excluded at the query and simply don't
// contribute. An empty slice means no qualifying reviews.
func (o *Orchestrator) SentimentFor(ctx context.Context, userID string) ([]YearMood, error) {
	rows, err := o.repo.SentimentRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, row := range rows {
		sums[row.Year] += MoodScore(row.Stars, row.Polarity)
		counts[row.Year]++
	}

	timeline := make([]YearMood, 0, len(sums))
	for year, sum := range sums {
		timeline = append(timeline, YearMood{Year: year, Mood: sum / float64(counts[year])})
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Year < timeline[j].Year })

	return timeline, nil
}

// MoodScore blends the star rating with the text polarity:
// 0.7*(stars/5) + 0.3*clamp(polarity, -1, 1).
func MoodScore(stars, polarity float64) float64 {
	if polarity > 1 {
		polarity = 1
	}
	if polarity < -1 {
		polarity = -1
	}
	return 0.7*(stars/5.0) + 0.3*polarity
}
