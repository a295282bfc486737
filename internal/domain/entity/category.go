package entity

import "fmt"

// Category is the fixed set of community tags a post can carry.
type Category string

const (
	CategoryHistory  Category = "HISTORY"
	CategoryFood     Category = "FOOD"
	CategoryPets     Category = "PETS"
	CategoryHealth   Category = "HEALTH"
	CategoryFashion  Category = "FASHION"
	CategoryExercise Category = "EXERCISE"
	CategoryOthers   Category = "OTHERS"
)

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{
		CategoryHistory,
		CategoryFood,
		CategoryPets,
		CategoryHealth,
		CategoryFashion,
		CategoryExercise,
		CategoryOthers,
	}
}

// ParseCategory validates a raw string against the enum.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, v := range Categories() {
		if c == v {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
