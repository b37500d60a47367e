// Package memory holds in-process adapters: the curated fallback
// recipe library and a profile store for tests and demos.
package memory

import (
	"context"
	"strings"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/recipe"
	"github.com/platemind/v1/internal/domain/validation"
	appErrors "github.com/platemind/v1/pkg/errors"
)

// FallbackLibrary serves curated recipes when generation cannot
// produce a safe one. Every recipe is still scanned against the
// household's constraints before it is served; curation is no
// exemption from validation.
type FallbackLibrary struct {
	recipes []recipe.Candidate
}

// NewFallbackLibrary builds the library with the default curated set.
func NewFallbackLibrary() *FallbackLibrary {
	return &FallbackLibrary{recipes: curatedRecipes}
}

// FindSafeRecipe returns the first library recipe that passes the
// constraint scan, preferring entries that overlap the query text.
func (l *FallbackLibrary) FindSafeRecipe(ctx context.Context, cons constraint.Set, query string) (*recipe.Candidate, error) {
	var firstSafe *recipe.Candidate

	queryWords := strings.Fields(strings.ToLower(query))
	for i := range l.recipes {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c := l.recipes[i]
		if len(validation.ScanIngredients(c.Ingredients, cons)) > 0 {
			continue
		}
		if firstSafe == nil {
			firstSafe = &c
		}
		name := strings.ToLower(c.Name + " " + c.Description)
		for _, w := range queryWords {
			if len(w) > 3 && strings.Contains(name, w) {
				return &c, nil
			}
		}
	}

	if firstSafe == nil {
		return nil, appErrors.NewAppError(appErrors.CodeFallbackExhausted,
			"No library recipe satisfies the household constraints", "")
	}
	return firstSafe, nil
}

// curatedRecipes is the built-in library. Entries skew simple and
// broadly compatible so at least one survives most constraint sets.
var curatedRecipes = []recipe.Candidate{
	{
		Name:        "Lemon Herb Rice Bowl",
		Description: "A light rice bowl with fresh herbs and lemon.",
		Cuisine:     "mediterranean",
		Ingredients: []string{"rice", "lemon", "parsley", "olive oil", "salt"},
		Instructions: []string{
			"Cook the rice until tender.",
			"Toss with olive oil, lemon juice and chopped parsley.",
			"Season and serve warm.",
		},
		PrepTime: "10 minutes", CookTime: "20 minutes",
		Servings: 4, SpiceLevel: "none",
	},
	{
		Name:        "Chickpea Tomato Stew",
		Description: "A hearty stew of chickpeas simmered in tomato.",
		Cuisine:     "mediterranean",
		Ingredients: []string{"chickpeas", "tomato", "olive oil", "cumin", "salt"},
		Instructions: []string{
			"Warm the olive oil and toast the cumin.",
			"Add tomatoes and simmer until thick.",
			"Stir in chickpeas and cook through.",
		},
		PrepTime: "10 minutes", CookTime: "25 minutes",
		Servings: 4, SpiceLevel: "mild",
	},
	{
		Name:        "Roasted Vegetable Quinoa",
		Description: "Roasted seasonal vegetables over fluffy quinoa.",
		Cuisine:     "american",
		Ingredients: []string{"quinoa", "zucchini", "bell pepper", "olive oil", "salt"},
		Instructions: []string{
			"Roast the vegetables until browned.",
			"Cook the quinoa in salted water.",
			"Serve the vegetables over the quinoa.",
		},
		PrepTime: "15 minutes", CookTime: "30 minutes",
		Servings: 4, SpiceLevel: "none",
	},
	{
		Name:        "Ginger Broccoli Stir Fry",
		Description: "Crisp broccoli in a quick ginger sauce over rice.",
		Cuisine:     "chinese",
		Ingredients: []string{"broccoli", "ginger", "rice", "sesame oil", "salt"},
		Instructions: []string{
			"Steam the rice.",
			"Stir-fry broccoli with ginger over high heat.",
			"Finish with sesame oil and serve over rice.",
		},
		PrepTime: "10 minutes", CookTime: "15 minutes",
		Servings: 2, SpiceLevel: "mild",
	},
	{
		Name:        "Simple Lentil Soup",
		Description: "A one-pot lentil soup with warming spices.",
		Cuisine:     "indian",
		Ingredients: []string{"lentils", "tomato", "cumin", "turmeric", "salt"},
		Instructions: []string{
			"Rinse the lentils.",
			"Simmer with tomato, cumin and turmeric until soft.",
			"Season and serve hot.",
		},
		PrepTime: "5 minutes", CookTime: "30 minutes",
		Servings: 4, SpiceLevel: "mild",
	},
	{
		Name:        "Baked Chicken with Potatoes",
		Description: "Sheet-pan chicken thighs with crispy potatoes.",
		Cuisine:     "american",
		Ingredients: []string{"chicken thighs", "potato", "olive oil", "rosemary", "salt"},
		Instructions: []string{
			"Toss chicken and potatoes with oil and rosemary.",
			"Roast on a sheet pan until cooked through.",
			"Rest briefly before serving.",
		},
		PrepTime: "10 minutes", CookTime: "40 minutes",
		Servings: 4, SpiceLevel: "none",
	},
	{
		Name:        "Fruit and Oat Crumble",
		Description: "A warm baked fruit crumble with an oat topping.",
		Cuisine:     "american",
		Ingredients: []string{"apple", "oats", "maple syrup", "cinnamon", "coconut oil"},
		Instructions: []string{
			"Slice the fruit into a baking dish.",
			"Mix oats, syrup, cinnamon and oil into a crumble.",
			"Bake until golden and bubbling.",
		},
		PrepTime: "15 minutes", CookTime: "35 minutes",
		Servings: 6, SpiceLevel: "none",
	},
}
