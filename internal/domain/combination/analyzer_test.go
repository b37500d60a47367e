package combination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemind/v1/internal/domain/combination"
	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/profile"
)

func constraintsFor(allergens, restrictions []string) constraint.Set {
	if allergens == nil {
		allergens = []string{}
	}
	if restrictions == nil {
		restrictions = []string{}
	}
	members := []profile.Member{{
		Name:                "Member",
		AgeCategory:         profile.AgeCategoryAdult,
		Allergens:           allergens,
		DietaryRestrictions: restrictions,
	}}
	snap := profile.Aggregate(members)
	return constraint.Build(snap, &profile.Household{Members: members})
}

func TestAnalyze_ClassicPairingScoresHigh(t *testing.T) {
	res := combination.Analyze(
		[]string{"tomato", "basil", "mozzarella"},
		constraintsFor(nil, nil), "",
	)

	assert.Empty(t, res.SafetyIssues)
	// Three known pairings stack on the neutral baseline
	assert.Greater(t, res.SynergyScore, 0.9)
	require.NotEmpty(t, res.CuisineMatches)
	assert.Equal(t, "italian", res.CuisineMatches[0].Cuisine)
}

func TestAnalyze_SingleCategoryScoresLowBalance(t *testing.T) {
	res := combination.Analyze(
		[]string{"chicken breast", "chicken thighs", "ground chicken"},
		constraintsFor(nil, nil), "",
	)

	assert.Less(t, res.BalanceScore, 0.4)
	assert.ElementsMatch(t, []string{"vegetable", "starch"}, res.MissingCategories)
	assert.NotEmpty(t, res.SuggestedAdditions)
}

func TestAnalyze_UnknownCombinationStaysNeutral(t *testing.T) {
	res := combination.Analyze(
		[]string{"dragonfruit", "fermented locust beans"},
		constraintsFor(nil, nil), "",
	)

	assert.InDelta(t, 0.5, res.SynergyScore, 0.001)
}

func TestAnalyze_SafetyShortCircuits(t *testing.T) {
	res := combination.Analyze(
		[]string{"shrimp", "garlic", "rice"},
		constraintsFor([]string{"shellfish"}, nil), "",
	)

	require.NotEmpty(t, res.SafetyIssues)
	assert.False(t, res.IsViable)
}

func TestAnalyze_SuggestionsRespectConstraints(t *testing.T) {
	res := combination.Analyze(
		[]string{"rice", "broccoli"},
		constraintsFor(nil, []string{profile.RestrictionVegan}), "",
	)

	// Protein is missing but meat and fish suggestions must not appear
	assert.Contains(t, res.MissingCategories, "protein")
	assert.NotContains(t, res.SuggestedAdditions, "chicken")
	assert.NotContains(t, res.SuggestedAdditions, "fish")
	assert.Contains(t, res.SuggestedAdditions, "tofu")
}

func TestAnalyze_MultiStemIngredientIsDeterministic(t *testing.T) {
	// "egg noodles" contains both the "egg" and "noodle" stems; the
	// categorization must land on the same one every time.
	first := combination.Analyze(
		[]string{"egg noodles", "scallion"},
		constraintsFor(nil, nil), "",
	)
	for i := 0; i < 50; i++ {
		res := combination.Analyze(
			[]string{"egg noodles", "scallion"},
			constraintsFor(nil, nil), "",
		)
		assert.Equal(t, first, res)
	}
}

func TestAnalyze_CuisineHintWinsTies(t *testing.T) {
	// Rice and ginger are staples of several cuisines at the same
	// coverage, so without a hint the ordering is alphabetical.
	neutral := combination.Analyze(
		[]string{"rice", "ginger"},
		constraintsFor(nil, nil), "",
	)
	require.NotEmpty(t, neutral.CuisineMatches)
	assert.NotEqual(t, "thai", neutral.CuisineMatches[0].Cuisine)

	hinted := combination.Analyze(
		[]string{"rice", "ginger"},
		constraintsFor(nil, nil), "thai",
	)
	require.NotEmpty(t, hinted.CuisineMatches)
	assert.Equal(t, "thai", hinted.CuisineMatches[0].Cuisine)
}

func TestAnalyze_SuggestionsCappedPerCategory(t *testing.T) {
	// All three core categories are missing; at most two suggestions
	// per category may come back.
	res := combination.Analyze(
		[]string{"cinnamon"},
		constraintsFor(nil, nil), "",
	)

	assert.ElementsMatch(t, []string{"protein", "vegetable", "starch"}, res.MissingCategories)
	assert.Len(t, res.SuggestedAdditions, 6)
}

func TestAnalyze_BalancedSetIsViable(t *testing.T) {
	res := combination.Analyze(
		[]string{"chicken", "broccoli", "rice"},
		constraintsFor(nil, nil), "",
	)

	assert.True(t, res.IsViable)
	assert.GreaterOrEqual(t, res.BalanceScore, 0.9)
	assert.Empty(t, res.MissingCategories)
}
