package profile

import (
	"sort"
	"strings"
)

// ConstraintSnapshot is the household-wide constraint set derived from the
// member list. It is recomputed on every invocation and never persisted.
//
// Aggregation is strictly conservative: any single member's allergen or
// restriction applies to the whole household's output. This is documented
// behavior, not an average.
type ConstraintSnapshot struct {
	Allergens           []string
	DietaryRestrictions []string
	HealthConditions    []string

	Vegetarian bool
	Vegan      bool
	NoBeef     bool
	NoPork     bool
	NoAlcohol  bool

	SpiceTolerance SpiceTolerance

	// Declaration flags: true only when every member has explicitly
	// answered the corresponding question. An empty household or a single
	// silent member leaves the flag false, which blocks the Gate.
	AllergensDeclared    bool
	RestrictionsDeclared bool
}

// HasRestriction reports whether the household carries the given tag
func (c ConstraintSnapshot) HasRestriction(tag string) bool {
	tag = normalizeTag(tag)
	for _, r := range c.DietaryRestrictions {
		if r == tag {
			return true
		}
	}
	return false
}

// Aggregate merges per-member constraints into a household-wide snapshot.
// Allergens, restrictions and health conditions are unioned; the dietary
// booleans are true when any member carries the tag; spice tolerance is
// the minimum declared value.
func Aggregate(members []Member) ConstraintSnapshot {
	snap := ConstraintSnapshot{
		AllergensDeclared:    len(members) > 0,
		RestrictionsDeclared: len(members) > 0,
	}

	allergens := make(map[string]struct{})
	restrictions := make(map[string]struct{})
	conditions := make(map[string]struct{})

	for _, m := range members {
		if !m.HasDeclaredAllergens() {
			snap.AllergensDeclared = false
		}
		if !m.HasDeclaredRestrictions() {
			snap.RestrictionsDeclared = false
		}

		for _, a := range m.Allergens {
			if a = normalizeTag(a); a != "" {
				allergens[a] = struct{}{}
			}
		}
		for _, r := range m.DietaryRestrictions {
			if r = normalizeTag(r); r != "" {
				restrictions[r] = struct{}{}
			}
		}
		for _, h := range m.HealthConditions {
			if h = normalizeTag(h); h != "" {
				conditions[h] = struct{}{}
			}
		}

		if m.SpiceTolerance != SpiceToleranceUnspecified {
			if snap.SpiceTolerance == SpiceToleranceUnspecified || m.SpiceTolerance < snap.SpiceTolerance {
				snap.SpiceTolerance = m.SpiceTolerance
			}
		}
	}

	snap.Allergens = sortedKeys(allergens)
	snap.DietaryRestrictions = sortedKeys(restrictions)
	snap.HealthConditions = sortedKeys(conditions)

	_, snap.Vegetarian = restrictions[RestrictionVegetarian]
	_, snap.Vegan = restrictions[RestrictionVegan]
	_, snap.NoBeef = restrictions[RestrictionNoBeef]
	_, snap.NoPork = restrictions[RestrictionNoPork]
	_, snap.NoAlcohol = restrictions[RestrictionNoAlcohol]

	// Vegan implies vegetarian for downstream keyword expansion
	if snap.Vegan {
		snap.Vegetarian = true
	}

	return snap
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
