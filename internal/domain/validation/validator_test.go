package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/profile"
	"github.com/platemind/v1/internal/domain/recipe"
	"github.com/platemind/v1/internal/domain/validation"
)

func setFor(allergens, restrictions []string) constraint.Set {
	if allergens == nil {
		allergens = []string{}
	}
	if restrictions == nil {
		restrictions = []string{}
	}
	snap := profile.Aggregate([]profile.Member{{
		Name:                "Member",
		AgeCategory:         profile.AgeCategoryAdult,
		Allergens:           allergens,
		DietaryRestrictions: restrictions,
	}})
	return constraint.Build(snap, nil)
}

func candidate(name string, ingredients ...string) *recipe.Candidate {
	return &recipe.Candidate{
		Name:         name,
		Ingredients:  ingredients,
		Instructions: []string{"Prepare.", "Cook.", "Serve."},
		Servings:     2,
	}
}

func TestValidateRecipe_SafeRecipePasses(t *testing.T) {
	report := validation.ValidateRecipe(
		candidate("Veggie Stir Fry", "broccoli", "bell pepper", "rice", "soy sauce"),
		setFor(nil, []string{"vegetarian"}),
		validation.SoftPreferences{},
	)

	assert.True(t, report.IsSafe)
	assert.Empty(t, report.Violations)
	assert.InDelta(t, 0.5, report.FitScore, 0.001)
}

func TestValidateRecipe_HardViolationForcesZeroScore(t *testing.T) {
	// However good the soft fit, one hard hit zeroes the score
	c := candidate("Shrimp Curry", "shrimp", "coconut milk", "rice")
	c.Cuisine = "thai"
	c.SpiceLevel = "mild"

	report := validation.ValidateRecipe(c,
		setFor([]string{"shellfish"}, nil),
		validation.SoftPreferences{
			SpiceTolerance:  profile.SpiceToleranceHigh,
			FavoredCuisines: []string{"thai"},
		},
	)

	assert.False(t, report.IsSafe)
	require.NotEmpty(t, report.Violations)
	assert.Equal(t, 0.0, report.FitScore)
}

func TestValidateRecipe_VeganCatchesHiddenDairy(t *testing.T) {
	report := validation.ValidateRecipe(
		candidate("Naan", "flour", "yeast", "butter", "salt"),
		setFor(nil, []string{"vegan"}),
		validation.SoftPreferences{},
	)

	assert.False(t, report.IsSafe)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "butter", report.Violations[0].Ingredient)
	assert.Equal(t, "vegan", report.Violations[0].Tag)
}

func TestValidateRecipe_JainCatchesOnionAndGarlic(t *testing.T) {
	report := validation.ValidateRecipe(
		candidate("Dal Tadka", "lentils", "onion", "garlic paste", "turmeric"),
		setFor(nil, []string{"jain"}),
		validation.SoftPreferences{},
	)

	assert.False(t, report.IsSafe)
	assert.Len(t, report.Violations, 2)
	assert.Equal(t, constraint.HardKindReligious, report.Violations[0].Kind)
}

func TestValidateRecipe_PeanutAllergyCatchesCompoundIngredient(t *testing.T) {
	report := validation.ValidateRecipe(
		candidate("Satay Noodles", "rice noodles", "peanut butter", "lime"),
		setFor([]string{"peanuts"}, nil),
		validation.SoftPreferences{},
	)

	assert.False(t, report.IsSafe)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "peanut butter", report.Violations[0].Ingredient)
}

func TestValidateRecipe_ConservativeSubstringMatching(t *testing.T) {
	// "creamed spinach" must hit a dairy constraint even though the
	// token is not exactly "cream"
	report := validation.ValidateRecipe(
		candidate("Creamed Spinach", "creamed spinach", "nutmeg"),
		setFor([]string{"dairy"}, nil),
		validation.SoftPreferences{},
	)

	assert.False(t, report.IsSafe)
}

func TestValidateRecipe_FitScoreRewardsCuisineAndSpice(t *testing.T) {
	c := candidate("Pasta Primavera", "pasta", "zucchini", "tomato")
	c.Cuisine = "Italian"
	c.SpiceLevel = "mild"

	report := validation.ValidateRecipe(c,
		setFor(nil, nil),
		validation.SoftPreferences{
			SpiceTolerance:  profile.SpiceToleranceMedium,
			FavoredCuisines: []string{"italian"},
		},
	)

	assert.True(t, report.IsSafe)
	assert.InDelta(t, 1.0, report.FitScore, 0.001)
}

func TestScanIngredients_NoConstraintsNoViolations(t *testing.T) {
	violations := validation.ScanIngredients(
		[]string{"beef", "shrimp", "butter", "wine"},
		setFor(nil, nil),
	)

	assert.Empty(t, violations)
}
