package profile

import (
	"context"
	"math"
)

// DiversityFor computes the user's category diversity: the non-generic
// category count mapping with its Shannon entropy. A single surviving
// category always scores 0 bits; the score grows with a more even spread
// over more categories.
func (o *Orchestrator) DiversityFor(ctx context.Context, userID string) (*CategoryDiversity, error) {
	counts, err := o.repo.CategoryCountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make(map[string]int)
	for _, c := range counts {
		if IsGeneric(c.Category) || c.Count <= 0 {
			continue
		}
		filtered[c.Category] += c.Count
	}

	return &CategoryDiversity{
		CategoryCounts: filtered,
		Entropy:        ShannonEntropy(filtered),
	}, nil
}

// ShannonEntropy returns the entropy in bits of a count distribution,
// 0.0 when the total is zero.
func ShannonEntropy(counts map[string]int) float64 {
	total := 0
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return 0.0
	}

	entropy := 0.0
	for _, count := range counts {
		if count <= 0 {
			continue
		}
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
