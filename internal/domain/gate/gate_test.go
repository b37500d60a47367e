package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/gate"
	"github.com/platemind/v1/internal/domain/profile"
)

func declaredMember(allergens, restrictions []string) profile.Member {
	if allergens == nil {
		allergens = []string{}
	}
	if restrictions == nil {
		restrictions = []string{}
	}
	return profile.Member{
		Name:                "Test Member",
		AgeCategory:         profile.AgeCategoryAdult,
		Allergens:           allergens,
		DietaryRestrictions: restrictions,
	}
}

func buildConstraints(members []profile.Member) (profile.ConstraintSnapshot, constraint.Set) {
	snap := profile.Aggregate(members)
	household := &profile.Household{Name: "Test Household", Members: members}
	return snap, constraint.Build(snap, household)
}

func TestEvaluate_UndeclaredAllergensBlocksEverything(t *testing.T) {
	member := profile.Member{
		Name:        "New Member",
		AgeCategory: profile.AgeCategoryAdult,
		// Allergens nil: the profile never answered the question
		DietaryRestrictions: []string{},
	}
	snap, cons := buildConstraints([]profile.Member{member})

	decision := gate.Evaluate(snap, cons, "a simple pasta dish", nil)

	assert.Equal(t, gate.OutcomeAsk, decision.Outcome)
	require.Len(t, decision.Questions, 1)
	assert.Contains(t, decision.Questions[0], "allergies")
}

func TestEvaluate_UndeclaredRestrictionsBlock(t *testing.T) {
	member := profile.Member{
		Name:        "New Member",
		AgeCategory: profile.AgeCategoryAdult,
		Allergens:   []string{},
		// DietaryRestrictions nil: unknown, not declared empty
	}
	snap, cons := buildConstraints([]profile.Member{member})

	decision := gate.Evaluate(snap, cons, "a simple pasta dish", nil)

	assert.Equal(t, gate.OutcomeAsk, decision.Outcome)
	require.Len(t, decision.Questions, 1)
	assert.Contains(t, decision.Questions[0], "dietary restrictions")
}

func TestEvaluate_BothDeclarationsMissingAskTogether(t *testing.T) {
	member := profile.Member{
		Name:        "New Member",
		AgeCategory: profile.AgeCategoryAdult,
	}
	snap, cons := buildConstraints([]profile.Member{member})

	decision := gate.Evaluate(snap, cons, "a simple pasta dish", nil)

	assert.Equal(t, gate.OutcomeAsk, decision.Outcome)
	assert.Len(t, decision.Questions, 2)
}

func TestEvaluate_DeclaredNoAllergensProceeds(t *testing.T) {
	snap, cons := buildConstraints([]profile.Member{declaredMember([]string{}, nil)})

	decision := gate.Evaluate(snap, cons, "a simple pasta dish", nil)

	assert.Equal(t, gate.OutcomeProceed, decision.Outcome)
	assert.Empty(t, decision.Questions)
}

func TestEvaluate_RefusesForbiddenRequest(t *testing.T) {
	snap, cons := buildConstraints([]profile.Member{
		declaredMember(nil, []string{profile.RestrictionVegan}),
	})

	decision := gate.Evaluate(snap, cons, "butter chicken for dinner", nil)

	assert.Equal(t, gate.OutcomeRefuse, decision.Outcome)
	assert.NotEmpty(t, decision.Reason)
	assert.NotEmpty(t, decision.Alternative)
}

func TestEvaluate_RefusesShrimpForShellfishAllergy(t *testing.T) {
	snap, cons := buildConstraints([]profile.Member{
		declaredMember([]string{"shellfish"}, nil),
	})

	decision := gate.Evaluate(snap, cons, "garlic shrimp pasta", nil)

	assert.Equal(t, gate.OutcomeRefuse, decision.Outcome)
	assert.Contains(t, decision.Reason, "shrimp")
}

func TestEvaluate_AsksAboutNeverAssumeItems(t *testing.T) {
	snap, cons := buildConstraints([]profile.Member{declaredMember(nil, nil)})

	decision := gate.Evaluate(snap, cons, "noodles with peanut butter sauce", nil)

	require.Equal(t, gate.OutcomeAsk, decision.Outcome)
	require.Len(t, decision.Questions, 1)
	assert.Contains(t, decision.Questions[0], "peanut butter")
}

func TestEvaluate_ConfirmedItemSkipsQuestion(t *testing.T) {
	snap, cons := buildConstraints([]profile.Member{declaredMember(nil, nil)})

	decision := gate.Evaluate(snap, cons, "noodles with peanut butter sauce",
		map[string]bool{"peanut butter": true})

	assert.Equal(t, gate.OutcomeProceed, decision.Outcome)
}

func TestEvaluate_AllergenOutranksAvailabilityQuestion(t *testing.T) {
	// Peanut butter for a peanut-allergic household must be refused,
	// not asked about.
	snap, cons := buildConstraints([]profile.Member{
		declaredMember([]string{"peanuts"}, nil),
	})

	decision := gate.Evaluate(snap, cons, "noodles with peanut butter sauce", nil)

	assert.Equal(t, gate.OutcomeRefuse, decision.Outcome)
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	snap, cons := buildConstraints([]profile.Member{
		declaredMember([]string{"peanuts"}, []string{profile.RestrictionVegetarian}),
	})

	first := gate.Evaluate(snap, cons, "pad thai with fish sauce and peanut garnish", nil)
	for i := 0; i < 20; i++ {
		again := gate.Evaluate(snap, cons, "pad thai with fish sauce and peanut garnish", nil)
		assert.Equal(t, first, again)
	}
}
