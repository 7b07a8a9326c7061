package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarterCatalogue(t *testing.T) {
	categories := starterCategories()
	items := starterItems()

	assert.Len(t, categories, 10)

	slugs := make(map[string]bool, len(categories))
	for i, c := range categories {
		assert.Equal(t, i, c.Order)
		assert.True(t, c.IsActive)
		assert.False(t, slugs[c.Slug], "duplicate slug %s", c.Slug)
		slugs[c.Slug] = true
	}

	perCategory := make(map[string]int)
	for _, item := range items {
		assert.True(t, slugs[item.Category], "item %s references unknown category %s", item.Name, item.Category)
		assert.GreaterOrEqual(t, item.Price, 0.0)
		perCategory[item.Category]++
		if item.Category == "CHIPS" {
			assert.False(t, item.Available)
		}
	}
	assert.Len(t, perCategory, len(categories), "every category has starter items")
}
