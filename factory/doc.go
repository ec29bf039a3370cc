// Package factory is the concrete recipe.FactorySpec: which machine runs a
// recipe, which modules and beacons it carries, and what fuel burner machines
// consume.
//
// Effects per machine:
//
//	prod  = 1 + Σ module productivity (+ mining productivity on mining machines)
//	speed = 1 + Σ module speed + beacon speed × beacon count × 1/2
//	power = max(1/5, 1 + Σ module power + beacon power × beacon count × 1/2)
//
// Derived rates:
//
//	RecipeRate     = speed of the machine × speed effect / recipe time  (crafts per second)
//	FactoryCount   = rate / RecipeRate
//	FuelIngredient = (energy usage / RecipeRate) / fuel value            (burner machines only)
//
// Recipes with an empty category (resource recipes) have no machine; their
// productivity is 1 and they need no fuel.
package factory
