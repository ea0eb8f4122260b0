package domain

import "errors"

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordSourceEmpty is returned when a word has no canonical source form.
	ErrWordSourceEmpty = errors.New("word source canonical form cannot be empty")

	// ErrWordTargetEmpty is returned when a word has no canonical target form.
	ErrWordTargetEmpty = errors.New("word target canonical form cannot be empty")

	// ErrWordAlternateIsCanonical is returned when an alternate form duplicates
	// the canonical form on the same language side.
	ErrWordAlternateIsCanonical = errors.New("word alternate form duplicates the canonical form")
)

// Translation holds all accepted spellings of a concept in one language:
// a designated canonical form plus any number of alternates. Alternates
// never contain the canonical form and preserve insertion order.
type Translation struct {
	Canonical  string   `json:"main"`
	Alternates []string `json:"alternatives,omitempty"`
}

// All returns the canonical form followed by the alternates.
func (t Translation) All() []string {
	forms := make([]string, 0, 1+len(t.Alternates))
	forms = append(forms, t.Canonical)
	forms = append(forms, t.Alternates...)
	return forms
}

// Word represents one learnable concept: a source-language translation paired
// with a target-language translation, tagged with a display category and
// optionally carrying an inline example sentence.
//
// Words are immutable for the duration of a session. The ID is stable and is
// the persistence key for learned state, so it must never be regenerated once
// assigned; decks without explicit IDs get a synthesized one via WordID.
type Word struct {
	ID       string           `json:"id"`
	Source   Translation      `json:"source"`
	Target   Translation      `json:"target"`
	Category Category         `json:"category"`
	Example  *ExampleSentence `json:"exampleSentence,omitempty"`
}

// WordID synthesizes the legacy stable identifier from the canonical forms.
// Kept for decks that predate explicit IDs so learned-state keys survive.
func WordID(sourceCanonical, targetCanonical string) string {
	return sourceCanonical + "↔" + targetCanonical
}

// NewWord creates a Word, synthesizing the ID when none is given.
// Returns an error if validation fails.
func NewWord(id string, source, target Translation, category Category) (*Word, error) {
	if id == "" {
		id = WordID(source.Canonical, target.Canonical)
	}
	w := &Word{
		ID:       id,
		Source:   source,
		Target:   target,
		Category: category,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// AllSourceForms returns every accepted source-language spelling,
// canonical first.
func (w *Word) AllSourceForms() []string { return w.Source.All() }

// AllTargetForms returns every accepted target-language spelling,
// canonical first.
func (w *Word) AllTargetForms() []string { return w.Target.All() }

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == "" {
		return ErrWordIDEmpty
	}
	if w.Source.Canonical == "" {
		return ErrWordSourceEmpty
	}
	if w.Target.Canonical == "" {
		return ErrWordTargetEmpty
	}
	for _, alt := range w.Source.Alternates {
		if alt == w.Source.Canonical {
			return ErrWordAlternateIsCanonical
		}
	}
	for _, alt := range w.Target.Alternates {
		if alt == w.Target.Canonical {
			return ErrWordAlternateIsCanonical
		}
	}
	return nil
}

// ExampleSentence is an illustrative usage of a word in both languages.
// OwnerKey is the key the sentence is indexed under, nominally a
// source-language form of the word it belongs to.
type ExampleSentence struct {
	OwnerKey   string `json:"wordId"`
	SourceText string `json:"source"`
	TargetText string `json:"target"`
}
