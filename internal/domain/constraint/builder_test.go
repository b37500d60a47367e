package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/profile"
)

func snapshotFor(allergens, restrictions []string) profile.ConstraintSnapshot {
	if allergens == nil {
		allergens = []string{}
	}
	if restrictions == nil {
		restrictions = []string{}
	}
	return profile.Aggregate([]profile.Member{{
		Name:                "Member",
		AgeCategory:         profile.AgeCategoryAdult,
		Allergens:           allergens,
		DietaryRestrictions: restrictions,
	}})
}

func TestBuild_AllergenExpandsToDerivedForms(t *testing.T) {
	set := constraint.Build(snapshotFor([]string{"shellfish"}, nil), nil)

	require.Len(t, set.Hard, 1)
	h := set.Hard[0]
	assert.Equal(t, constraint.HardKindAllergen, h.Kind)
	assert.Contains(t, h.Forbidden, "shrimp")
	assert.Contains(t, h.Forbidden, "prawn")
	assert.Contains(t, h.Forbidden, "crab")
}

func TestBuild_JainForbidsRootVegetables(t *testing.T) {
	set := constraint.Build(snapshotFor(nil, []string{"jain"}), nil)

	require.Len(t, set.Hard, 1)
	h := set.Hard[0]
	assert.Equal(t, constraint.HardKindReligious, h.Kind)
	assert.Contains(t, h.Forbidden, "onion")
	assert.Contains(t, h.Forbidden, "garlic")
	assert.Contains(t, h.Forbidden, "potato")
	assert.Contains(t, h.Forbidden, "honey")
	assert.Contains(t, h.Guidance, "asafoetida")
}

func TestBuild_VeganForbidsDairyAndEggs(t *testing.T) {
	set := constraint.Build(snapshotFor(nil, []string{"vegan"}), nil)

	require.Len(t, set.Hard, 1)
	h := set.Hard[0]
	assert.Contains(t, h.Forbidden, "butter")
	assert.Contains(t, h.Forbidden, "ghee")
	assert.Contains(t, h.Forbidden, "egg")
	assert.Contains(t, h.Forbidden, "chicken")
}

func TestBuild_SoftPreferencesFromHousehold(t *testing.T) {
	snap := profile.Aggregate([]profile.Member{{
		Name: "Member", AgeCategory: profile.AgeCategoryAdult,
		Allergens: []string{}, DietaryRestrictions: []string{},
		SpiceTolerance: profile.SpiceToleranceMild,
	}})
	household := &profile.Household{
		FavoredCuisines: []string{"indian", "thai"},
		PantryLevel:     profile.PantryLevelBasic,
	}

	set := constraint.Build(snap, household)

	assert.Empty(t, set.Hard)
	kinds := map[constraint.SoftKind]bool{}
	for _, s := range set.Soft {
		kinds[s.Kind] = true
	}
	assert.True(t, kinds[constraint.SoftKindSpice])
	assert.True(t, kinds[constraint.SoftKindCuisine])
	assert.True(t, kinds[constraint.SoftKindPantry])
}

func TestMatchText_IsCaseInsensitive(t *testing.T) {
	set := constraint.Build(snapshotFor([]string{"dairy"}, nil), nil)

	match, hit := set.MatchText("Paneer Tikka Masala")
	require.True(t, hit)
	assert.Equal(t, "paneer", match.Keyword)
	assert.Equal(t, "dairy", match.Constraint.Tag)
}

func TestRenderHard_ListsEveryForbiddenItem(t *testing.T) {
	set := constraint.Build(snapshotFor([]string{"peanuts"}, []string{"vegan"}), nil)

	text := set.RenderHard()

	assert.Contains(t, text, "CRITICAL DIETARY REQUIREMENTS")
	assert.Contains(t, text, "peanut")
	assert.Contains(t, text, "butter")
	assert.Contains(t, text, "Substitution:")
}
