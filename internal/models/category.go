package models

import "time"

// Category identifies the kind of food an item is
type Category string

const (
	// Food categories
	CategoryMeat      Category = "meat"
	CategorySeafood   Category = "seafood"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryDrink     Category = "drink"
	CategoryDairy     Category = "dairy"
	CategoryLeftover  Category = "leftover"
	CategorySauce     Category = "sauce"
	CategoryOther     Category = "other"
)

// CategoryDefinition describes one food category and its default shelf life
type CategoryDefinition struct {
	Category      Category `json:"category"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	ShelfLifeDays int      `json:"shelfLifeDays"`
}

var categoryOrder = []Category{
	CategoryMeat,
	CategorySeafood,
	CategoryVegetable,
	CategoryFruit,
	CategoryDrink,
	CategoryDairy,
	CategoryLeftover,
	CategorySauce,
	CategoryOther,
}

var categories = map[Category]CategoryDefinition{
	CategoryMeat:      {Category: CategoryMeat, Name: "Meat", Icon: "🥩", ShelfLifeDays: 3},
	CategorySeafood:   {Category: CategorySeafood, Name: "Seafood", Icon: "🐟", ShelfLifeDays: 2},
	CategoryVegetable: {Category: CategoryVegetable, Name: "Vegetable", Icon: "🥦", ShelfLifeDays: 7},
	CategoryFruit:     {Category: CategoryFruit, Name: "Fruit", Icon: "🍎", ShelfLifeDays: 7},
	CategoryDrink:     {Category: CategoryDrink, Name: "Drink", Icon: "🥛", ShelfLifeDays: 14},
	CategoryDairy:     {Category: CategoryDairy, Name: "Dairy", Icon: "🧀", ShelfLifeDays: 7},
	CategoryLeftover:  {Category: CategoryLeftover, Name: "Leftover", Icon: "🍱", ShelfLifeDays: 3},
	CategorySauce:     {Category: CategorySauce, Name: "Sauce", Icon: "🫙", ShelfLifeDays: 30},
	CategoryOther:     {Category: CategoryOther, Name: "Other", Icon: "🍽️", ShelfLifeDays: 7},
}

// Categories returns every category definition in display order.
func Categories() []CategoryDefinition {
	defs := make([]CategoryDefinition, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		defs = append(defs, categories[cat])
	}
	return defs
}

// CategoryInfo returns the definition for a category, falling back to
// "other" for anything it does not recognize. It never fails.
func CategoryInfo(cat Category) CategoryDefinition {
	if def, ok := categories[cat]; ok {
		return def
	}
	return categories[CategoryOther]
}

// DefaultExpiry derives an expiry date from a category's default shelf
// life. Calendar-day arithmetic, so month boundaries and DST transitions
// behave the way a wall calendar does.
func DefaultExpiry(cat Category, dateAdded time.Time) time.Time {
	return dateAdded.AddDate(0, 0, CategoryInfo(cat).ShelfLifeDays)
}
