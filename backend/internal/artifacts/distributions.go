package artifacts

import (
	"encoding/json"
	"os"
	"sort"

	apperrors "tastegraph/backend/pkg/errors"
)

// Distribution is a sorted population of reference values supporting
// percentile lookup by the rank convention: the percentile of x is the
// fraction of the population with value <= x, scaled to [0,100].
type Distribution []float64

// NewDistribution sorts values into a Distribution.
func NewDistribution(values []float64) Distribution {
	d := make(Distribution, len(values))
	copy(d, values)
	sort.Float64s(d)
	return d
}

// Len returns the population size.
func (d Distribution) Len() int {
	return len(d)
}

// PercentileOf returns the rank percentile of v in [0,100].
// An empty distribution yields 0.
func (d Distribution) PercentileOf(v float64) float64 {
	if len(d) == 0 {
		return 0
	}
	atOrBelow := sort.Search(len(d), func(i int) bool { return d[i] > v })
	return float64(atOrBelow) / float64(len(d)) * 100
}

// RankDistributions bundles the three populations the influence percentile
// needs: raw centrality scores, total usefulness votes per user, and the
// composite metric (product of the two individual percentiles).
type RankDistributions struct {
	Centrality  Distribution
	UsefulVotes Distribution
	Composite   Distribution
}

type rankDistributionsFile struct {
	Centrality  []float64 `json:"centrality"`
	UsefulVotes []float64 `json:"useful_votes"`
	Composite   []float64 `json:"composite"`
}

// LoadRankDistributions reads all three populations from one JSON file.
func LoadRankDistributions(path string) (*RankDistributions, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewArtifactLoadFailed(ArtifactRankDistributions, path, err)
	}

	var file rankDistributionsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, apperrors.NewArtifactLoadFailed(ArtifactRankDistributions, path, err)
	}

	return &RankDistributions{
		Centrality:  NewDistribution(file.Centrality),
		UsefulVotes: NewDistribution(file.UsefulVotes),
		Composite:   NewDistribution(file.Composite),
	}, nil
}
