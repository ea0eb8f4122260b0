package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietger/internal/domain"
	"vietger/internal/textnorm"
)

func word(t *testing.T, source string, sourceAlt []string, target string, targetAlt []string) *domain.Word {
	t.Helper()
	w, err := domain.NewWord("",
		domain.Translation{Canonical: source, Alternates: sourceAlt},
		domain.Translation{Canonical: target, Alternates: targetAlt},
		domain.CategoryNouns)
	require.NoError(t, err)
	return w
}

func TestMergeKeepsDistinctEntries(t *testing.T) {
	t.Parallel()

	entries := []*domain.Word{
		word(t, "das Haus", nil, "nhà", nil),
		word(t, "der Mann", nil, "người đàn ông", nil),
	}
	merged := Merge(entries)
	assert.Len(t, merged, 2)
}

func TestMergeCollapsesSharedSourceForm(t *testing.T) {
	t.Parallel()

	entries := []*domain.Word{
		word(t, "der Freund", []string{"Freund"}, "bạn trai", nil),
		word(t, "Freund", nil, "bạn", []string{"bạn bè"}),
	}
	merged := Merge(entries)
	require.Len(t, merged, 1)

	got := merged[0]
	// First occurrence wins the canonical forms and the ID.
	assert.Equal(t, "der Freund", got.Source.Canonical)
	assert.Equal(t, "bạn trai", got.Target.Canonical)
	assert.Equal(t, domain.WordID("der Freund", "bạn trai"), got.ID)
	// Alternates accumulate, deduplicated via normalized comparison.
	assert.Equal(t, []string{"Freund"}, got.Source.Alternates)
	assert.Equal(t, []string{"bạn", "bạn bè"}, got.Target.Alternates)
}

func TestMergeCollapsesSharedTargetForm(t *testing.T) {
	t.Parallel()

	entries := []*domain.Word{
		word(t, "sprechen", nil, "nói", nil),
		word(t, "reden", nil, "nói", []string{"nói chuyện"}),
	}
	merged := Merge(entries)
	require.Len(t, merged, 1)

	got := merged[0]
	assert.Equal(t, "sprechen", got.Source.Canonical)
	assert.Equal(t, []string{"reden"}, got.Source.Alternates)
	assert.Equal(t, []string{"nói chuyện"}, got.Target.Alternates)
}

func TestMergeChainsThroughNewForms(t *testing.T) {
	t.Parallel()

	// The third entry only matches a form the second entry introduced, so the
	// key index must be refreshed after every merge.
	entries := []*domain.Word{
		word(t, "gehen", nil, "đi", nil),
		word(t, "gehen", []string{"laufen"}, "đi bộ", nil),
		word(t, "laufen", nil, "chạy", nil),
	}
	merged := Merge(entries)
	require.Len(t, merged, 1)
	assert.Equal(t, "gehen", merged[0].Source.Canonical)
	assert.Contains(t, merged[0].Target.Alternates, "chạy")
}

func TestMergeCaseAndWhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	entries := []*domain.Word{
		word(t, "der  Tisch", nil, "bàn", nil),
		word(t, "DER TISCH", nil, "cái bàn", nil),
	}
	merged := Merge(entries)
	require.Len(t, merged, 1)
	// First-seen casing is preserved for display.
	assert.Equal(t, "der  Tisch", merged[0].Source.Canonical)
}

func TestMergeDeterministic(t *testing.T) {
	t.Parallel()

	build := func() []*domain.Word {
		return []*domain.Word{
			word(t, "der Freund", []string{"Freund"}, "bạn trai", nil),
			word(t, "Freund", nil, "bạn", []string{"bạn bè"}),
			word(t, "das Haus", nil, "nhà", nil),
			word(t, "sprechen", nil, "nói", nil),
			word(t, "reden", nil, "nói", nil),
		}
	}

	first := Merge(build())
	second := Merge(build())
	assert.Equal(t, first, second, "same ordered input must merge identically")
}

func TestMergeSurfaceFormUniqueness(t *testing.T) {
	t.Parallel()

	entries := []*domain.Word{
		word(t, "der Freund", []string{"Freund"}, "bạn trai", nil),
		word(t, "Freund", nil, "bạn", nil),
		word(t, "das Haus", nil, "nhà", nil),
		word(t, "Haus", []string{"das Haus"}, "căn nhà", nil),
		word(t, "sprechen", nil, "nói", nil),
	}
	merged := Merge(entries)

	sourceOwner := make(map[string]string)
	targetOwner := make(map[string]string)
	for _, w := range merged {
		for _, f := range w.AllSourceForms() {
			key := textnorm.Normalize(f)
			owner, taken := sourceOwner[key]
			assert.False(t, taken && owner != w.ID,
				"source form %q owned by both %q and %q", f, owner, w.ID)
			sourceOwner[key] = w.ID
		}
		for _, f := range w.AllTargetForms() {
			key := textnorm.Normalize(f)
			owner, taken := targetOwner[key]
			assert.False(t, taken && owner != w.ID,
				"target form %q owned by both %q and %q", f, owner, w.ID)
			targetOwner[key] = w.ID
		}
	}
}

func TestMergeEmptyInput(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Merge(nil))
}
