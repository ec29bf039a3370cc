// Package recipe models the production graph: items, the recipes that
// consume and produce them, and the FactorySpec collaborator that supplies
// run-time modifiers (productivity, fuel) per recipe.
//
// The Graph owns every Item and Recipe and keeps back references in both
// directions: Item.Recipes lists producers and Item.Uses lists consumers, in
// registration order. Items are created implicitly the first time a recipe
// mentions them.
//
// Quantities are exact rationals. A recipe's Time is seconds per craft; its
// ingredient and product amounts are items per craft.
package recipe
