package quiz

import (
	"vietger/internal/domain"
	"vietger/internal/textnorm"
)

// ExpectedAnswers returns the accepted answer forms for a word in the given
// direction: target-language forms when quizzing source to target, source
// forms otherwise.
func ExpectedAnswers(w *domain.Word, direction domain.Direction) []string {
	if direction.IsSourceToTarget() {
		return w.AllTargetForms()
	}
	return w.AllSourceForms()
}

// PromptText returns the canonical form shown as the question.
func PromptText(w *domain.Word, direction domain.Direction) string {
	if direction.IsSourceToTarget() {
		return w.Source.Canonical
	}
	return w.Target.Canonical
}

// IsCorrect reports whether input matches any accepted form of the word in
// the given direction. Matching is exact after normalization; there is no
// fuzzy or edit-distance matching.
func IsCorrect(input string, w *domain.Word, direction domain.Direction) bool {
	got := textnorm.Normalize(input)
	for _, form := range ExpectedAnswers(w, direction) {
		if textnorm.Normalize(form) == got {
			return true
		}
	}
	return false
}
