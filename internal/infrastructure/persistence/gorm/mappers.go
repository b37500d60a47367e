package gorm

import (
	"strings"

	"github.com/platemind/v1/internal/domain/profile"
)

const listSeparator = "\x1f"

// joinList flattens a tag list for a non-nullable column.
func joinList(items []string) string {
	return strings.Join(items, listSeparator)
}

// splitList restores a tag list from a non-nullable column.
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSeparator)
}

// joinNullable maps nil to NULL and an empty declared list to the
// empty string.
func joinNullable(items []string) *string {
	if items == nil {
		return nil
	}
	s := joinList(items)
	return &s
}

// splitNullable restores the nil-versus-empty distinction.
func splitNullable(s *string) []string {
	if s == nil {
		return nil
	}
	return splitList(*s)
}

func toHouseholdModel(h *profile.Household) *HouseholdModel {
	model := &HouseholdModel{
		ID:              h.ID,
		Name:            h.Name,
		FavoredCuisines: joinList(h.FavoredCuisines),
		AvoidedCuisines: joinList(h.AvoidedCuisines),
		PantryLevel:     string(h.PantryLevel),
		Language:        h.Language,
		Measurement:     string(h.Measurement),
	}
	for _, m := range h.Members {
		model.Members = append(model.Members, MemberModel{
			ID:                  m.ID,
			HouseholdID:         h.ID,
			Name:                m.Name,
			AgeCategory:         string(m.AgeCategory),
			Allergens:           joinNullable(m.Allergens),
			DietaryRestrictions: joinNullable(m.DietaryRestrictions),
			HealthConditions:    joinList(m.HealthConditions),
			MedicalNote:         m.MedicalNote,
			SpiceTolerance:      int(m.SpiceTolerance),
			Likes:               joinList(m.Likes),
			Dislikes:            joinList(m.Dislikes),
		})
	}
	return model
}

func toDomainHousehold(model *HouseholdModel) *profile.Household {
	h := &profile.Household{
		ID:              model.ID,
		Name:            model.Name,
		FavoredCuisines: splitList(model.FavoredCuisines),
		AvoidedCuisines: splitList(model.AvoidedCuisines),
		PantryLevel:     profile.PantryLevel(model.PantryLevel),
		Language:        model.Language,
		Measurement:     profile.MeasurementSystem(model.Measurement),
	}
	for _, m := range model.Members {
		h.Members = append(h.Members, profile.Member{
			ID:                  m.ID,
			Name:                m.Name,
			AgeCategory:         profile.AgeCategory(m.AgeCategory),
			Allergens:           splitNullable(m.Allergens),
			DietaryRestrictions: splitNullable(m.DietaryRestrictions),
			HealthConditions:    splitList(m.HealthConditions),
			MedicalNote:         m.MedicalNote,
			SpiceTolerance:      profile.SpiceTolerance(m.SpiceTolerance),
			Likes:               splitList(m.Likes),
			Dislikes:            splitList(m.Dislikes),
		})
	}
	return h
}
