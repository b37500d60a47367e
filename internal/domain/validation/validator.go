// Package validation implements the post-generation safety scan. Every
// candidate recipe, whatever its source, is scanned against the
// household's hard constraints before it may be surfaced.
package validation

import (
	"fmt"
	"strings"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/profile"
	"github.com/platemind/v1/internal/domain/recipe"
)

// Violation records a single hard-constraint hit in an ingredient
type Violation struct {
	Ingredient string
	Keyword    string
	Kind       constraint.HardKind
	Tag        string
}

// String renders the violation for audit events and retry prompts
func (v Violation) String() string {
	return fmt.Sprintf("%q violates the %s constraint %q (matched %q)", v.Ingredient, v.Kind, v.Tag, v.Keyword)
}

// Report is the validator verdict for one candidate recipe
type Report struct {
	IsSafe     bool
	Violations []Violation
	FitScore   float64
}

// SoftPreferences are the advisory signals folded into the fit score
// when no hard violation is present.
type SoftPreferences struct {
	SpiceTolerance  profile.SpiceTolerance
	FavoredCuisines []string
}

// ValidateRecipe scans a candidate's ingredient list against the hard
// constraint set. Any hit forces is_safe=false and fit_score=0.0;
// hard violations are fail-fast, never averaged against soft qualities.
func ValidateRecipe(c *recipe.Candidate, cons constraint.Set, prefs SoftPreferences) Report {
	violations := ScanIngredients(c.Ingredients, cons)
	if len(violations) > 0 {
		return Report{IsSafe: false, Violations: violations, FitScore: 0.0}
	}

	return Report{
		IsSafe:   true,
		FitScore: fitScore(c, prefs),
	}
}

// ScanIngredients matches each ingredient string against every
// hard-forbidden keyword. Matching is case-insensitive substring:
// ambiguous tokens are treated conservatively, so "creamed spinach"
// violates a dairy constraint. False positives are preferred over
// false negatives.
func ScanIngredients(ingredients []string, cons constraint.Set) []Violation {
	var violations []Violation
	for _, ing := range ingredients {
		for _, m := range cons.MatchAll(ing) {
			violations = append(violations, Violation{
				Ingredient: ing,
				Keyword:    m.Keyword,
				Kind:       m.Constraint.Kind,
				Tag:        m.Constraint.Tag,
			})
		}
	}
	return violations
}

// fitScore measures soft-constraint alignment in [0,1]. Contributions
// are additive and capped at 1.0.
func fitScore(c *recipe.Candidate, prefs SoftPreferences) float64 {
	score := 0.5

	for _, fav := range prefs.FavoredCuisines {
		if strings.EqualFold(strings.TrimSpace(fav), strings.TrimSpace(c.Cuisine)) {
			score += 0.3
			break
		}
	}

	if prefs.SpiceTolerance != profile.SpiceToleranceUnspecified && c.SpiceLevel != "" {
		declared := profile.ParseSpiceTolerance(c.SpiceLevel)
		if declared != profile.SpiceToleranceUnspecified && declared <= prefs.SpiceTolerance {
			score += 0.2
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
