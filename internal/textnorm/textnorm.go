// Package textnorm canonicalizes free-text strings for comparison. It backs
// both answer matching and sentence lookup, so the rules here define what
// "the same word" means across the whole engine.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes text for comparison: trims surrounding whitespace,
// collapses inner whitespace runs to single spaces, lowercases, and folds
// diacritics and width variants to their base form. Folding matters because
// the target language carries tone marks casual typists omit.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	s := strings.TrimSpace(text)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.ToLower(s)
	return foldMarks(s)
}

// foldMarks strips combining marks and folds width variants. Transformer
// chains are stateful, so a fresh chain is built per call.
func foldMarks(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		width.Fold,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// leadingArticles is the closed set of source-language articles that may
// prefix a vocabulary entry but be absent from sentence-index keys.
var leadingArticles = map[string]struct{}{
	"der": {}, "die": {}, "das": {},
	"ein": {}, "eine": {}, "einen": {}, "einem": {}, "einer": {},
	"dem": {}, "den": {}, "des": {},
}

// StripLeadingArticle removes a known leading article from text, returning
// the remainder and true. It returns ("", false) when the first
// whitespace-delimited token is not a known article or nothing follows it.
func StripLeadingArticle(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	first, rest, found := strings.Cut(trimmed, " ")
	if !found {
		return "", false
	}
	if _, ok := leadingArticles[strings.ToLower(first)]; !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}
