package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietger/internal/domain"
)

func testWord(t *testing.T, source, target string, targetAlts ...string) *domain.Word {
	t.Helper()
	w, err := domain.NewWord(
		"",
		domain.Translation{Canonical: source},
		domain.Translation{Canonical: target, Alternates: targetAlts},
		domain.CategoryNouns,
	)
	require.NoError(t, err)
	return w
}

func TestExpectedAnswersFollowDirection(t *testing.T) {
	t.Parallel()

	w := testWord(t, "das Haus", "nhà", "căn nhà")

	assert.Equal(t, []string{"nhà", "căn nhà"}, ExpectedAnswers(w, domain.DirectionSourceToTarget))
	assert.Equal(t, []string{"das Haus"}, ExpectedAnswers(w, domain.DirectionTargetToSource))
}

func TestPromptTextFollowsDirection(t *testing.T) {
	t.Parallel()

	w := testWord(t, "das Haus", "nhà")

	assert.Equal(t, "das Haus", PromptText(w, domain.DirectionSourceToTarget))
	assert.Equal(t, "nhà", PromptText(w, domain.DirectionTargetToSource))
}

func TestIsCorrect(t *testing.T) {
	t.Parallel()

	w := testWord(t, "Haus", "nhà", "căn nhà")

	tests := []struct {
		name      string
		input     string
		direction domain.Direction
		want      bool
	}{
		{"exact canonical", "nhà", domain.DirectionSourceToTarget, true},
		{"whitespace and case", "  NHÀ  ", domain.DirectionSourceToTarget, true},
		{"accents omitted", "nha", domain.DirectionSourceToTarget, true},
		{"alternate form", "căn nhà", domain.DirectionSourceToTarget, true},
		{"wrong word", "nước", domain.DirectionSourceToTarget, false},
		{"reverse direction", "haus", domain.DirectionTargetToSource, true},
		{"no fuzzy matching", "nhàa", domain.DirectionSourceToTarget, false},
		{"empty input", "", domain.DirectionSourceToTarget, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsCorrect(tt.input, w, tt.direction))
		})
	}
}

func TestIsCorrectAcceptsEveryFormUnderMangling(t *testing.T) {
	t.Parallel()

	w := testWord(t, "der Freund", "bạn", "bạn trai")
	for _, form := range ExpectedAnswers(w, domain.DirectionSourceToTarget) {
		assert.True(t, IsCorrect(form, w, domain.DirectionSourceToTarget), form)
		assert.True(t, IsCorrect("  "+form+"  ", w, domain.DirectionSourceToTarget), form)
	}
}
