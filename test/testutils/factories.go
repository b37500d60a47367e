// Package testutils provides test data factories for the engine's
// domain types.
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/platemind/v1/internal/domain/profile"
	"github.com/platemind/v1/internal/domain/recipe"
)

// MemberOption customizes a generated member
type MemberOption func(*profile.Member)

// WithAllergens sets declared allergens. Called with no arguments it
// declares "none", which is distinct from never answering.
func WithAllergens(allergens ...string) MemberOption {
	return func(m *profile.Member) {
		if allergens == nil {
			allergens = []string{}
		}
		m.Allergens = allergens
	}
}

// WithUndeclaredAllergens leaves the allergen question unanswered
func WithUndeclaredAllergens() MemberOption {
	return func(m *profile.Member) { m.Allergens = nil }
}

// WithRestrictions sets declared dietary restrictions
func WithRestrictions(restrictions ...string) MemberOption {
	return func(m *profile.Member) {
		if restrictions == nil {
			restrictions = []string{}
		}
		m.DietaryRestrictions = restrictions
	}
}

// WithSpiceTolerance sets the member's spice tolerance
func WithSpiceTolerance(t profile.SpiceTolerance) MemberOption {
	return func(m *profile.Member) { m.SpiceTolerance = t }
}

// NewMember generates a member with complete declarations by default.
func NewMember(opts ...MemberOption) profile.Member {
	m := profile.Member{
		ID:                  uuid.New(),
		Name:                gofakeit.FirstName(),
		AgeCategory:         profile.AgeCategoryAdult,
		Allergens:           []string{},
		DietaryRestrictions: []string{},
		SpiceTolerance:      profile.SpiceToleranceMedium,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewHousehold generates a household around the given members. With no
// members it contains a single fully declared adult.
func NewHousehold(members ...profile.Member) *profile.Household {
	if len(members) == 0 {
		members = []profile.Member{NewMember()}
	}
	return &profile.Household{
		ID:              uuid.New(),
		Name:            gofakeit.LastName() + " household",
		Members:         members,
		FavoredCuisines: []string{"italian"},
		PantryLevel:     profile.PantryLevelBasic,
		Language:        "en",
		Measurement:     profile.MeasurementMetric,
	}
}

// NewCandidate generates a plausible candidate recipe with the given
// ingredients.
func NewCandidate(ingredients ...string) *recipe.Candidate {
	if len(ingredients) == 0 {
		ingredients = []string{"rice", "tomato", "olive oil"}
	}
	return &recipe.Candidate{
		Name:        gofakeit.Adjective() + " " + gofakeit.NounConcrete(),
		Description: gofakeit.Sentence(8),
		Cuisine:     "italian",
		Ingredients: ingredients,
		Instructions: []string{
			"Prepare the ingredients.",
			"Cook over medium heat.",
			"Season and serve.",
		},
		PrepTime:   "10 minutes",
		CookTime:   "25 minutes",
		Servings:   4,
		SpiceLevel: "mild",
	}
}
