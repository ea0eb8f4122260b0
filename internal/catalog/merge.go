package catalog

import (
	"vietger/internal/domain"
	"vietger/internal/textnorm"
)

// Merge deduplicates raw entries that denote the same concept under different
// surface spellings, producing one canonical entry per concept with alternate
// forms retained as accepted answers.
//
// Entries are processed in input order against a map from normalized surface
// form (either language side) to the index of an already-emitted entry. When
// any form of an incoming entry matches, the entry is folded into the
// existing one: canonical forms, category and ID of the first occurrence are
// kept, alternates are unioned with first-seen casing preserved, and all
// newly introduced forms are re-registered against that index. Given the same
// ordered input the output is identical.
func Merge(entries []*domain.Word) []*domain.Word {
	indexByKey := make(map[string]int)
	result := make([]*domain.Word, 0, len(entries))

	for _, entry := range entries {
		keys := surfaceKeys(entry)

		existing := -1
		for _, key := range keys {
			if idx, ok := indexByKey[key]; ok {
				existing = idx
				break
			}
		}

		if existing >= 0 {
			merged := mergeWords(result[existing], entry)
			result[existing] = merged
			for _, key := range surfaceKeys(merged) {
				indexByKey[key] = existing
			}
			continue
		}

		result = append(result, entry)
		idx := len(result) - 1
		for _, key := range keys {
			indexByKey[key] = idx
		}
	}

	return result
}

// mergeWords folds other into base: base keeps its ID, canonical forms and
// category; alternates are unioned across both sides.
func mergeWords(base, other *domain.Word) *domain.Word {
	sourceAll := orderedUnique(append(base.AllSourceForms(), other.AllSourceForms()...))
	targetAll := orderedUnique(append(base.AllTargetForms(), other.AllTargetForms()...))

	merged := &domain.Word{
		ID: base.ID,
		Source: domain.Translation{
			Canonical:  base.Source.Canonical,
			Alternates: withoutForm(sourceAll, base.Source.Canonical),
		},
		Target: domain.Translation{
			Canonical:  base.Target.Canonical,
			Alternates: withoutForm(targetAll, base.Target.Canonical),
		},
		Category: base.Category,
		Example:  base.Example,
	}
	if merged.Example == nil {
		merged.Example = other.Example
	}
	return merged
}

// surfaceKeys returns the normalized duplicate-detection keys for every
// accepted spelling of the word on both language sides.
func surfaceKeys(w *domain.Word) []string {
	forms := append(w.AllSourceForms(), w.AllTargetForms()...)
	keys := make([]string, 0, len(forms))
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		key := textnorm.Normalize(f)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// orderedUnique dedupes by normalized comparison while preserving the first
// occurrence's original casing and order.
func orderedUnique(forms []string) []string {
	seen := make(map[string]struct{}, len(forms))
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		key := textnorm.Normalize(f)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

func withoutForm(forms []string, canonical string) []string {
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		if f == canonical {
			continue
		}
		out = append(out, f)
	}
	return out
}
