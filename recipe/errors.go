package recipe

import "errors"

var (
	// ErrEmptyName is returned for a recipe or item with an empty name.
	ErrEmptyName = errors.New("recipe: empty name")

	// ErrDuplicateRecipe is returned when a recipe name is registered twice.
	ErrDuplicateRecipe = errors.New("recipe: duplicate recipe")

	// ErrUnknownItem is returned by lookups of items the graph has never seen.
	ErrUnknownItem = errors.New("recipe: unknown item")

	// ErrUnknownRecipe is returned by lookups of recipes the graph has never seen.
	ErrUnknownRecipe = errors.New("recipe: unknown recipe")

	// ErrNoProducts is returned for a recipe without products.
	ErrNoProducts = errors.New("recipe: recipe has no products")

	// ErrInvalidAmount is returned for a non-positive ingredient or product
	// amount, or a negative crafting time.
	ErrInvalidAmount = errors.New("recipe: amount must be positive")
)
