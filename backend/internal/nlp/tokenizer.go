// Package nlp prepares review text for signature scoring: tokenization and
// part-of-speech tagging via prose, lemmatization via golem.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// allowedTags are the Penn Treebank tags kept for the signature:
// proper nouns and adjectives.
var allowedTags = map[string]struct{}{
	"NNP":  {},
	"NNPS": {},
	"JJ":   {},
	"JJR":  {},
	"JJS":  {},
}

// Tokenizer turns raw review text into the filtered lemma stream the word
// signature is computed over. It is stateless after construction and safe
// for concurrent use.
type Tokenizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewTokenizer loads the English lemmatizer dictionary.
func NewTokenizer() (*Tokenizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemmatizer: %w", err)
	}
	return &Tokenizer{lemmatizer: lemmatizer}, nil
}

// SignatureTokens lowercases and tags the text, keeps proper-noun and
// adjective tokens, lemmatizes them, and drops stop-words, punctuation and
// single-character lemmas.
func (t *Tokenizer) SignatureTokens(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(strings.ToLower(text), prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	var tokens []string
	for _, tok := range doc.Tokens() {
		if _, ok := allowedTags[tok.Tag]; !ok {
			continue
		}
		if !hasLetter(tok.Text) {
			continue
		}
		lemma := t.lemmatizer.Lemma(tok.Text)
		if len(lemma) <= 1 {
			continue
		}
		if _, stop := stopWords[lemma]; stop {
			continue
		}
		tokens = append(tokens, lemma)
	}
	return tokens, nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
