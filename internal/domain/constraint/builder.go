package constraint

import (
	"fmt"
	"strings"

	"github.com/platemind/v1/internal/domain/profile"
)

// Build converts an aggregated snapshot plus household-level preferences
// into the hard/soft constraint set consumed by the gate, the prompt
// builder and the validator.
func Build(snap profile.ConstraintSnapshot, household *profile.Household) Set {
	var set Set

	for _, allergen := range snap.Allergens {
		set.Hard = append(set.Hard, Hard{
			Kind:      HardKindAllergen,
			Tag:       allergen,
			Forbidden: expandAllergen(allergen),
			Guidance:  fmt.Sprintf("omit %s entirely; do not substitute a related allergen", allergen),
		})
	}

	for _, tag := range snap.DietaryRestrictions {
		kind := HardKindDietary
		if religiousTags[tag] {
			kind = HardKindReligious
		}
		set.Hard = append(set.Hard, Hard{
			Kind:      kind,
			Tag:       tag,
			Forbidden: expandRestriction(tag),
			Guidance:  substitutionGuidance[tag],
		})
	}

	if snap.SpiceTolerance != profile.SpiceToleranceUnspecified {
		set.Soft = append(set.Soft, Soft{
			Kind:        SoftKindSpice,
			Description: spiceBands[int(snap.SpiceTolerance)],
			Values:      []string{snap.SpiceTolerance.String()},
		})
	}

	if household != nil {
		if len(household.FavoredCuisines) > 0 {
			set.Soft = append(set.Soft, Soft{
				Kind:        SoftKindCuisine,
				Description: "prefer these cuisines: " + strings.Join(household.FavoredCuisines, ", "),
				Values:      household.FavoredCuisines,
			})
		}
		if len(household.AvoidedCuisines) > 0 {
			set.Soft = append(set.Soft, Soft{
				Kind:        SoftKindCuisine,
				Description: "steer away from these cuisines: " + strings.Join(household.AvoidedCuisines, ", "),
				Values:      household.AvoidedCuisines,
			})
		}
		set.Soft = append(set.Soft, pantrySoft(household.PantryLevel))
	}

	return set
}

// expandAllergen returns the keyword list for a declared allergen. An
// allergen without a synonym table still matches its own name.
func expandAllergen(allergen string) []string {
	if kws, ok := allergenKeywords[allergen]; ok {
		return kws
	}
	return []string{allergen}
}

// expandRestriction returns the keyword list for a restriction tag.
// Unknown tags match their own name, so a custom restriction still
// participates in hard matching.
func expandRestriction(tag string) []string {
	if kws, ok := restrictionKeywords[tag]; ok {
		return kws
	}
	return []string{strings.ReplaceAll(tag, "no-", "")}
}

func pantrySoft(level profile.PantryLevel) Soft {
	desc := "assume only salt, pepper and cooking oil are on hand; list everything else as a required purchase"
	switch level {
	case profile.PantryLevelBasic:
		desc = "assume common dry seasonings and oil are on hand; list fresh items as required purchases"
	case profile.PantryLevelFull:
		desc = "assume a well-stocked pantry of seasonings, oils and dry staples"
	}
	return Soft{
		Kind:        SoftKindPantry,
		Description: desc,
		Values:      []string{string(level)},
	}
}
