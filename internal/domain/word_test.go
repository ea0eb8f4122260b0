package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordSynthesizesID(t *testing.T) {
	t.Parallel()

	w, err := NewWord(
		"",
		Translation{Canonical: "das Haus"},
		Translation{Canonical: "nhà"},
		CategoryNouns,
	)
	require.NoError(t, err)
	assert.Equal(t, "das Haus↔nhà", w.ID)
}

func TestNewWordKeepsExplicitID(t *testing.T) {
	t.Parallel()

	w, err := NewWord(
		"w-haus",
		Translation{Canonical: "das Haus"},
		Translation{Canonical: "nhà"},
		CategoryNouns,
	)
	require.NoError(t, err)
	assert.Equal(t, "w-haus", w.ID)
}

func TestWordValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		word    Word
		wantErr error
	}{
		{
			name:    "missing id",
			word:    Word{Source: Translation{Canonical: "a"}, Target: Translation{Canonical: "b"}},
			wantErr: ErrWordIDEmpty,
		},
		{
			name:    "missing source",
			word:    Word{ID: "x", Target: Translation{Canonical: "b"}},
			wantErr: ErrWordSourceEmpty,
		},
		{
			name:    "missing target",
			word:    Word{ID: "x", Source: Translation{Canonical: "a"}},
			wantErr: ErrWordTargetEmpty,
		},
		{
			name: "alternate duplicates canonical",
			word: Word{
				ID:     "x",
				Source: Translation{Canonical: "a", Alternates: []string{"a"}},
				Target: Translation{Canonical: "b"},
			},
			wantErr: ErrWordAlternateIsCanonical,
		},
		{
			name: "valid",
			word: Word{
				ID:     "x",
				Source: Translation{Canonical: "a", Alternates: []string{"c"}},
				Target: Translation{Canonical: "b"},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.word.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllFormsCanonicalFirst(t *testing.T) {
	t.Parallel()

	w := Word{
		ID:     "x",
		Source: Translation{Canonical: "der Freund", Alternates: []string{"Freund"}},
		Target: Translation{Canonical: "bạn", Alternates: []string{"bạn trai", "bạn bè"}},
	}
	assert.Equal(t, []string{"der Freund", "Freund"}, w.AllSourceForms())
	assert.Equal(t, []string{"bạn", "bạn trai", "bạn bè"}, w.AllTargetForms())
}
