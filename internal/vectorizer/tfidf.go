// Package vectorizer builds TF-IDF representations of the chunk corpus.
package vectorizer

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// TFIDF computes term-frequency/inverse-document-frequency vectors over a
// chunk corpus. The vocabulary is built once per run; each chunk vector is
// L2-normalized so cosine similarity reduces to a dot product, which the
// clusterer relies on.
type TFIDF struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// Option configures the vectorizer.
type Option func(*TFIDF)

// WithStopwords replaces the default stop-word set.
// An empty map disables filtering.
func WithStopwords(words map[string]struct{}) Option {
	return func(v *TFIDF) {
		v.stopwords = words
	}
}

// New creates a TF-IDF vectorizer with the default tokenizer.
func New(opts ...Option) *TFIDF {
	v := &TFIDF{
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    defaultStopwords(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Vectorize builds the vocabulary from the full chunk corpus and computes
// one vector per chunk, in chunk order.
//
// The IDF uses standard smoothing, log((1+N)/(1+df)) + 1, so a term present
// in every chunk still carries weight and division by zero cannot occur.
// A corpus whose chunks have no surviving terms after normalization yields
// an empty vocabulary and all-zero vectors rather than an error.
func (v *TFIDF) Vectorize(chunks []domain.Chunk) (*domain.Vocabulary, []domain.ChunkVector, error) {
	if len(chunks) == 0 {
		return nil, nil, fmt.Errorf("%w: no chunks supplied", domain.ErrEmptyCorpus)
	}

	// Document frequency per term, over chunks.
	df := make(map[string]int)
	tokenized := make([][]string, len(chunks))
	for i, chunk := range chunks {
		tokens := v.tokenize(chunk.Content)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Sorted terms give every run the same dimension order.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := &domain.Vocabulary{
		Terms:   terms,
		DocFreq: make([]int, len(terms)),
	}
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
		vocab.DocFreq[i] = df[term]
	}

	n := float64(len(chunks))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]domain.ChunkVector, len(chunks))
	for i, chunk := range chunks {
		weights := make([]float64, len(terms))
		for _, tok := range tokenized[i] {
			if idx, ok := index[tok]; ok {
				weights[idx] += idf[idx]
			}
		}
		l2Normalize(weights)
		vectors[i] = domain.ChunkVector{
			ChunkID: chunk.ID,
			Weights: weights,
		}
	}

	return vocab, vectors, nil
}

// tokenize lowercases the text and extracts letter runs, dropping
// punctuation, digits, and stop words.
func (v *TFIDF) tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := v.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, isStop := v.stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// l2Normalize scales the vector to unit length in place.
// The all-zero vector is left untouched.
func l2Normalize(weights []float64) {
	norm := 0.0
	for _, w := range weights {
		norm += w * w
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range weights {
		weights[i] /= norm
	}
}
