package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategoryInfoFallsBackToOther(t *testing.T) {
	def := CategoryInfo("spaceship")
	assert.Equal(t, CategoryOther, def.Category)

	def = CategoryInfo(CategoryMeat)
	assert.Equal(t, "Meat", def.Name)
	assert.Equal(t, 3, def.ShelfLifeDays)
}

func TestDefaultExpiryMeat(t *testing.T) {
	added := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), DefaultExpiry(CategoryMeat, added))
}

func TestDefaultExpiryCrossesMonthBoundary(t *testing.T) {
	added := time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), DefaultExpiry(CategorySauce, added))
}

func TestCategoriesOrdering(t *testing.T) {
	defs := Categories()
	assert.Len(t, defs, 9)
	assert.Equal(t, CategoryMeat, defs[0].Category)
	assert.Equal(t, CategoryOther, defs[len(defs)-1].Category)
}
