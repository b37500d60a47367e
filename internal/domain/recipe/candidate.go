// Package recipe contains the candidate recipe model. Candidates are
// produced by the external generator or by a fallback source and are
// treated as untrusted input to the validator regardless of their own
// self-declared tags.
package recipe

import (
	"errors"
	"strings"
)

// Candidate is an externally-produced recipe proposal
type Candidate struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Cuisine      string   `json:"cuisine"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     string   `json:"prep_time"`
	CookTime     string   `json:"cook_time"`
	Servings     int      `json:"servings"`
	SpiceLevel   string   `json:"spice_level,omitempty"`

	// Self-declared tags. Informational only: the validator re-scans
	// the ingredient list and never trusts these.
	DeclaredAllergens   []string `json:"declared_allergens,omitempty"`
	DeclaredDietaryTags []string `json:"declared_dietary_tags,omitempty"`
}

// Validate checks structural completeness of a candidate
func (c *Candidate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if len(c.Ingredients) == 0 {
		return ErrNoIngredients
	}
	if len(c.Instructions) == 0 {
		return ErrNoInstructions
	}
	if c.Servings < 0 {
		return ErrInvalidServings
	}
	return nil
}

// Domain errors for candidate recipes
var (
	ErrNameRequired    = errors.New("recipe name is required")
	ErrNoIngredients   = errors.New("recipe must have at least one ingredient")
	ErrNoInstructions  = errors.New("recipe must have at least one instruction")
	ErrInvalidServings = errors.New("servings cannot be negative")
)
