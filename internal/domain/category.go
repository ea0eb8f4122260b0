package domain

// Category is a display-grouping tag for words. It is a closed set and is
// never consulted by matching logic.
type Category string

// Possible category values
const (
	CategoryPronouns      Category = "pronouns"
	CategoryCoreVerbs     Category = "coreVerbs"
	CategoryNouns         Category = "nouns"
	CategoryCommonThings  Category = "commonThings"
	CategoryAdjectives    Category = "adjectives"
	CategoryQuestionWords Category = "questionWords"
	CategoryTimeFrequency Category = "timeFrequency"
	CategoryPrepositions  Category = "prepositions"
	CategoryConnectors    Category = "connectors"
	CategoryAdverbsFill   Category = "adverbsFillers"
	CategoryInterjections Category = "interjectionsExpressions"
	CategoryShapes        Category = "shapes"
	CategoryColors        Category = "colors"
	CategoryMaterials     Category = "materials"
	CategoryVerbs         Category = "verbs"
	CategoryAdverbs       Category = "adverbs"
	CategoryPhrases       Category = "phrases"
	CategoryOther         Category = "other"
)

// CategoriesOrdered is the preferred section order for display grouping.
var CategoriesOrdered = []Category{
	CategoryPronouns, CategoryCoreVerbs, CategoryVerbs, CategoryNouns,
	CategoryCommonThings, CategoryAdjectives, CategoryQuestionWords,
	CategoryTimeFrequency, CategoryPrepositions, CategoryConnectors,
	CategoryAdverbsFill, CategoryAdverbs, CategoryInterjections,
	CategoryShapes, CategoryColors, CategoryMaterials, CategoryPhrases,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range CategoriesOrdered {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the human-readable label for the category.
func (c Category) Title() string {
	switch c {
	case CategoryPronouns:
		return "Pronouns"
	case CategoryCoreVerbs:
		return "Core Verbs"
	case CategoryNouns:
		return "Nouns"
	case CategoryCommonThings:
		return "Common Things"
	case CategoryAdjectives:
		return "Adjectives"
	case CategoryQuestionWords:
		return "Question Words"
	case CategoryTimeFrequency:
		return "Time & Frequency"
	case CategoryPrepositions:
		return "Prepositions"
	case CategoryConnectors:
		return "Connectors"
	case CategoryAdverbsFill:
		return "Adverbs & Fillers"
	case CategoryInterjections:
		return "Interjections"
	case CategoryShapes:
		return "Shapes"
	case CategoryColors:
		return "Colors"
	case CategoryMaterials:
		return "Materials"
	case CategoryVerbs:
		return "Verbs"
	case CategoryAdverbs:
		return "Adverbs"
	case CategoryPhrases:
		return "Phrases"
	default:
		return "Other"
	}
}
