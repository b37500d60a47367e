// Package profile contains the household profile domain model.
// A profile is a per-request snapshot: it is supplied fresh by the
// profile store on every engine invocation and is never cached.
package profile

import (
	"strings"

	"github.com/google/uuid"
)

// Household represents the profile snapshot for one household.
// Immutable for the duration of a single engine invocation.
type Household struct {
	ID      uuid.UUID
	Name    string
	Members []Member

	// Household-level preference fields
	FavoredCuisines []string
	AvoidedCuisines []string
	PantryLevel     PantryLevel
	Language        string
	Measurement     MeasurementSystem
}

// Member represents a single household member and their declared constraints.
//
// Allergens and DietaryRestrictions distinguish "never declared" from
// "declared empty": a nil slice means the member has not answered the
// question, an empty non-nil slice means they declared having none.
// The Golden Rule Gate blocks generation on undeclared fields.
type Member struct {
	ID          uuid.UUID
	Name        string
	AgeCategory AgeCategory

	Allergens           []string
	DietaryRestrictions []string
	HealthConditions    []string
	MedicalNote         string

	SpiceTolerance SpiceTolerance
	Likes          []string
	Dislikes       []string
}

// HasDeclaredAllergens reports whether the allergen question was answered,
// even if the answer was "none".
func (m Member) HasDeclaredAllergens() bool {
	return m.Allergens != nil
}

// HasDeclaredRestrictions reports whether the dietary restriction question
// was answered, even if the answer was "none".
func (m Member) HasDeclaredRestrictions() bool {
	return m.DietaryRestrictions != nil
}

// AgeCategory classifies a member by life stage
type AgeCategory string

const (
	AgeCategoryInfant AgeCategory = "infant"
	AgeCategoryChild  AgeCategory = "child"
	AgeCategoryTeen   AgeCategory = "teen"
	AgeCategoryAdult  AgeCategory = "adult"
	AgeCategorySenior AgeCategory = "senior"
)

// SpiceTolerance is an ordinal spice preference. Aggregation takes the
// minimum declared value across members (most restrictive wins).
type SpiceTolerance int

const (
	SpiceToleranceUnspecified SpiceTolerance = iota
	SpiceToleranceNone
	SpiceToleranceMild
	SpiceToleranceMedium
	SpiceToleranceHigh
	SpiceToleranceVeryHigh
)

// String returns the canonical label for a spice tolerance level
func (s SpiceTolerance) String() string {
	switch s {
	case SpiceToleranceNone:
		return "none"
	case SpiceToleranceMild:
		return "mild"
	case SpiceToleranceMedium:
		return "medium"
	case SpiceToleranceHigh:
		return "high"
	case SpiceToleranceVeryHigh:
		return "very-high"
	default:
		return "unspecified"
	}
}

// ParseSpiceTolerance parses a spice tolerance label
func ParseSpiceTolerance(s string) SpiceTolerance {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return SpiceToleranceNone
	case "mild":
		return SpiceToleranceMild
	case "medium":
		return SpiceToleranceMedium
	case "high":
		return SpiceToleranceHigh
	case "very-high", "very_high", "very high", "veryhigh":
		return SpiceToleranceVeryHigh
	default:
		return SpiceToleranceUnspecified
	}
}

// PantryLevel controls whether common seasonings may be assumed present
// or must be listed as required purchases.
type PantryLevel string

const (
	PantryLevelNone  PantryLevel = "none"
	PantryLevelBasic PantryLevel = "basic"
	PantryLevelFull  PantryLevel = "full"
)

// MeasurementSystem is the household's preferred unit system
type MeasurementSystem string

const (
	MeasurementMetric   MeasurementSystem = "metric"
	MeasurementImperial MeasurementSystem = "imperial"
)

// Dietary restriction tags recognized by the aggregator. Unknown tags are
// still carried through the union; these are the ones with boolean
// projections and keyword expansions.
const (
	RestrictionVegetarian = "vegetarian"
	RestrictionVegan      = "vegan"
	RestrictionNoBeef     = "no-beef"
	RestrictionNoPork     = "no-pork"
	RestrictionNoAlcohol  = "no-alcohol"
	RestrictionJain       = "jain"
	RestrictionHalal      = "halal"
	RestrictionKosher     = "kosher"
)
