// Package dataset reads recipe data files.
//
// A data file is YAML with five top-level lists: items (optional, to
// register items no recipe mentions), recipes, factories, modules and
// fuels. Every quantity may be written as an integer, a decimal, a fraction
// string such as "1/3" or a mixed number "1+1/2". Decimals written as YAML
// floats go through rational.FromFloat, so 0.33333 reads as 1/3.
//
// Recipe products and ingredients take any of these shapes:
//
//	- {item: iron-plate, amount: 2}
//	- {item: uranium-235, amount: 1, probability: 0.007}
//	- {item: stone, amount_min: 1, amount_max: 3}
//	- [iron-plate, 2]
//
// A ranged amount counts as its midpoint, and probability scales the amount.
//
// Load validates the file with go-playground/validator tags before building
// anything, then returns a Dataset holding the recipe.Graph and the raw
// factory, module and fuel definitions that factory.New consumes.
package dataset
