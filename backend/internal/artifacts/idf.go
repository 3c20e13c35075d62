package artifacts

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "tastegraph/backend/pkg/errors"
)

// IDFModel is the fitted document-frequency model exported by the offline
// corpus job: a vocabulary of unigrams and bigrams, each with a global
// inverse-document-frequency weight. File order is preserved so weight ties
// can be broken deterministically.
type IDFModel struct {
	weights map[string]float64
	rank    map[string]int // position of the term in the vocabulary file
}

type idfEntry struct {
	Term string  `json:"term"`
	IDF  float64 `json:"idf"`
}

// LoadIDFModel reads a JSONL vocabulary file, one {"term": ..., "idf": ...}
// object per line.
func LoadIDFModel(path string) (*IDFModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewArtifactLoadFailed(ArtifactIDFModel, path, err)
	}
	defer f.Close()

	m := &IDFModel{
		weights: make(map[string]float64),
		rank:    make(map[string]int),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var entry idfEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, apperrors.NewArtifactLoadFailed(ArtifactIDFModel, path,
				fmt.Errorf("line %d: %w", line, err))
		}
		if entry.Term == "" {
			continue
		}
		if _, seen := m.weights[entry.Term]; !seen {
			m.rank[entry.Term] = len(m.rank)
		}
		m.weights[entry.Term] = entry.IDF
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewArtifactLoadFailed(ArtifactIDFModel, path, err)
	}
	if len(m.weights) == 0 {
		return nil, apperrors.NewArtifactLoadFailed(ArtifactIDFModel, path,
			fmt.Errorf("vocabulary is empty"))
	}

	return m, nil
}

// NewIDFModel builds a model from an ordered term list; used by tests.
func NewIDFModel(terms []string, idfs []float64) *IDFModel {
	m := &IDFModel{
		weights: make(map[string]float64, len(terms)),
		rank:    make(map[string]int, len(terms)),
	}
	for i, term := range terms {
		if _, seen := m.weights[term]; !seen {
			m.rank[term] = len(m.rank)
		}
		m.weights[term] = idfs[i]
	}
	return m
}

// Len returns the vocabulary size.
func (m *IDFModel) Len() int {
	return len(m.weights)
}

// Rank returns the term's position in the vocabulary file; terms outside the
// vocabulary sort last.
func (m *IDFModel) Rank(term string) int {
	if r, ok := m.rank[term]; ok {
		return r
	}
	return len(m.rank)
}

// ScoreDocument scores a tokenized document against the vocabulary:
// term-frequency within the document times the global IDF weight. Both
// unigrams and adjacent-pair bigrams are counted. Terms not in the
// vocabulary, and terms whose weight comes out zero, are omitted.
func (m *IDFModel) ScoreDocument(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}

	tf := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		tf[tok]++
		if i+1 < len(tokens) {
			tf[tok+" "+tokens[i+1]]++
		}
	}

	scores := make(map[string]float64)
	for term, count := range tf {
		idf, ok := m.weights[term]
		if !ok {
			continue
		}
		if weight := float64(count) * idf; weight > 0 {
			scores[term] = weight
		}
	}
	return scores
}
