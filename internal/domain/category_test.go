package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIsValid(t *testing.T) {
	t.Parallel()

	for _, c := range CategoriesOrdered {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, Category("notARealCategory").IsValid())
}

func TestCategoryTitles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Core Verbs", CategoryCoreVerbs.Title())
	assert.Equal(t, "Other", CategoryOther.Title())
	assert.NotEmpty(t, Category("notARealCategory").Title(), "unknown categories still render")
}

func TestCategoriesOrderedCoversAll(t *testing.T) {
	t.Parallel()

	seen := make(map[Category]struct{})
	for _, c := range CategoriesOrdered {
		_, dup := seen[c]
		assert.False(t, dup, string(c))
		seen[c] = struct{}{}
	}
}
