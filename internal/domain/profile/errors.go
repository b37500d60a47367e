package profile

import (
	"errors"
	"strings"
)

// Domain errors for household profiles

var (
	ErrNoMembers          = errors.New("household has no members")
	ErrMemberNameRequired = errors.New("member name is required")
	ErrUnknownAgeCategory = errors.New("unknown age category")
)

var knownAgeCategories = map[AgeCategory]bool{
	AgeCategoryInfant: true,
	AgeCategoryChild:  true,
	AgeCategoryTeen:   true,
	AgeCategoryAdult:  true,
	AgeCategorySenior: true,
}

// Validate checks structural invariants before a household is stored.
// Declaration completeness is deliberately not checked here: a profile
// with unanswered questions may be saved, the gate blocks it at
// generation time instead.
func (h *Household) Validate() error {
	if len(h.Members) == 0 {
		return ErrNoMembers
	}
	for _, m := range h.Members {
		if strings.TrimSpace(m.Name) == "" {
			return ErrMemberNameRequired
		}
		if !knownAgeCategories[m.AgeCategory] {
			return ErrUnknownAgeCategory
		}
	}
	return nil
}
