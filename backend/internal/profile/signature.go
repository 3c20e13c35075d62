package profile

import (
	"context"
	"sort"

	"tastegraph/backend/internal/artifacts"
	"tastegraph/backend/internal/constants"
	apperrors "tastegraph/backend/pkg/errors"
)

// SignatureFor computes the user's distinctive vocabulary: the top terms by
// weight when the concatenation of their recent review lemmas is scored
// against the corpus IDF model. Requires both the IDF model and the
// tokenizer; either missing is an unavailable condition, not "no data".
func (o *Orchestrator) SignatureFor(ctx context.Context, userID string) ([]SignatureTerm, error) {
	model, err := o.store.IDFModel()
	if err != nil {
		return nil, err
	}
	if o.tokenizer == nil {
		return nil, apperrors.NewArtifactUnavailable("signature tokenizer")
	}

	texts, err := o.repo.ReviewTexts(ctx, userID, constants.MaxSignatureReviews)
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, nil
	}

	// All retained lemmas across all reviews form one synthetic document.
	var tokens []string
	for _, text := range texts {
		reviewTokens, err := o.tokenizer.SignatureTokens(text)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, reviewTokens...)
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	scores := model.ScoreDocument(tokens)
	return topSignatureTerms(scores, model, constants.TopSignatureTerms), nil
}

// topSignatureTerms sorts term scores by weight descending, breaking ties by
// the term's position in the vocabulary file, and keeps the top n.
// ScoreDocument already omits zero-weight terms.
func topSignatureTerms(scores map[string]float64, model *artifacts.IDFModel, n int) []SignatureTerm {
	terms := make([]SignatureTerm, 0, len(scores))
	for term, weight := range scores {
		terms = append(terms, SignatureTerm{Term: term, Weight: weight})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return model.Rank(terms[i].Term) < model.Rank(terms[j].Term)
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
