package artifacts

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "tastegraph/backend/pkg/errors"
)

// CategoryPopularity maps a category id to its precomputed list of top
// business ids, ordered by rating then volume by the offline job. The list
// order is part of the contract: the recommender walks it as-is.
type CategoryPopularity struct {
	topBusinesses map[string][]string
}

type popularityEntry struct {
	Category      string   `json:"category"`
	TopBusinesses []string `json:"top_businesses"`
}

// LoadCategoryPopularity reads a JSONL file, one
// {"category": ..., "top_businesses": [...]} object per line.
func LoadCategoryPopularity(path string) (*CategoryPopularity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewArtifactLoadFailed(ArtifactCategoryPopularity, path, err)
	}
	defer f.Close()

	p := &CategoryPopularity{topBusinesses: make(map[string][]string)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var entry popularityEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, apperrors.NewArtifactLoadFailed(ArtifactCategoryPopularity, path,
				fmt.Errorf("line %d: %w", line, err))
		}
		if entry.Category == "" {
			continue
		}
		p.topBusinesses[entry.Category] = entry.TopBusinesses
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewArtifactLoadFailed(ArtifactCategoryPopularity, path, err)
	}

	return p, nil
}

// NewCategoryPopularity builds an index from a map; used by tests.
func NewCategoryPopularity(topBusinesses map[string][]string) *CategoryPopularity {
	return &CategoryPopularity{topBusinesses: topBusinesses}
}

// Len returns the number of indexed categories.
func (p *CategoryPopularity) Len() int {
	return len(p.topBusinesses)
}

// TopBusinesses returns the ordered top-business list for a category.
func (p *CategoryPopularity) TopBusinesses(category string) ([]string, bool) {
	businesses, ok := p.topBusinesses[category]
	return businesses, ok
}
