package catalog

import (
	"vietger/internal/domain"
	"vietger/internal/textnorm"
)

// Resolver finds the example sentence associated with a vocabulary entry.
// It is read-only after construction and safe for concurrent use.
//
// Resolution runs a cascade, first match wins:
//
//  1. exact match on the word's ID
//  2. exact match on the canonical source form
//  3. exact match on each source alternate, in order
//  4. normalized match against an index built once at load time
//
// The normalized index registers, for every sentence, the normalized owner
// key and its article-stripped variant. On key collision a later sentence
// silently overwrites an earlier one (last-write-wins); this is an accepted,
// documented ambiguity of the index.
type Resolver struct {
	exact      map[string]*domain.ExampleSentence
	normalized map[string]*domain.ExampleSentence
}

// NewResolver builds a Resolver over the given sentences.
func NewResolver(sentences []domain.ExampleSentence) *Resolver {
	r := &Resolver{
		exact:      make(map[string]*domain.ExampleSentence, len(sentences)),
		normalized: make(map[string]*domain.ExampleSentence, 2*len(sentences)),
	}
	for i := range sentences {
		s := &sentences[i]
		r.exact[s.OwnerKey] = s

		key := textnorm.Normalize(s.OwnerKey)
		if key != "" {
			r.normalized[key] = s
		}
		if stripped, ok := textnorm.StripLeadingArticle(s.OwnerKey); ok {
			r.normalized[textnorm.Normalize(stripped)] = s
		}
	}
	return r
}

// Resolve returns the example sentence for the word, or (nil, false) when no
// key in the cascade hits. Absence is a valid state, not an error.
func (r *Resolver) Resolve(w *domain.Word) (*domain.ExampleSentence, bool) {
	if w == nil {
		return nil, false
	}
	if w.Example != nil {
		return w.Example, true
	}

	if s, ok := r.exact[w.ID]; ok {
		return s, true
	}
	if s, ok := r.exact[w.Source.Canonical]; ok {
		return s, true
	}
	for _, alt := range w.Source.Alternates {
		if s, ok := r.exact[alt]; ok {
			return s, true
		}
	}

	for _, key := range normalizedLookupKeys(w) {
		if s, ok := r.normalized[key]; ok {
			return s, true
		}
	}
	return nil, false
}

// normalizedLookupKeys derives the normalized-index probe keys for a word:
// its ID, the canonical source form with and without a leading article, and
// the same pair for every alternate.
func normalizedLookupKeys(w *domain.Word) []string {
	keys := make([]string, 0, 2+2*len(w.Source.Alternates))
	keys = append(keys, textnorm.Normalize(w.ID))

	for _, form := range w.AllSourceForms() {
		keys = append(keys, textnorm.Normalize(form))
		if stripped, ok := textnorm.StripLeadingArticle(form); ok {
			keys = append(keys, textnorm.Normalize(stripped))
		}
	}
	return keys
}
