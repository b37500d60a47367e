// Package inbound defines the caller-facing contract of the engine.
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/platemind/v1/internal/domain/combination"
	"github.com/platemind/v1/internal/domain/course"
	"github.com/platemind/v1/internal/domain/recipe"
)

// EngineService is the single entry point for recipe generation,
// ingredient analysis, and meal composition.
type EngineService interface {
	GenerateRecipe(ctx context.Context, req RecipeRequest) (*Result, error)
	AnalyzeCombination(ctx context.Context, req CombinationRequest) (*Result, error)
	ComposeMeal(ctx context.Context, req MealPlanRequest) (*Result, error)
}

// RecipeRequest asks for one recipe for a household. ConfirmedAvailable
// lists sensitive ingredients the caller has explicitly confirmed are
// on hand, so the gate does not have to ask about them again.
type RecipeRequest struct {
	HouseholdID        uuid.UUID `json:"household_id" validate:"required"`
	Query              string    `json:"query" validate:"required,min=3,max=500"`
	CuisineHint        string    `json:"cuisine_hint,omitempty" validate:"omitempty,max=50"`
	ConfirmedAvailable []string  `json:"confirmed_available,omitempty" validate:"omitempty,dive,required"`
}

// CombinationRequest asks whether a set of ingredients works together
// for a household.
type CombinationRequest struct {
	HouseholdID uuid.UUID `json:"household_id" validate:"required"`
	Ingredients []string  `json:"ingredients" validate:"required,min=1,max=10,dive,required"`
	CuisineHint string    `json:"cuisine_hint,omitempty" validate:"omitempty,max=50"`
}

// MealPlanRequest asks for a multi-course plan.
type MealPlanRequest struct {
	HouseholdID uuid.UUID `json:"household_id" validate:"required"`
	Style       string    `json:"style" validate:"required,oneof=casual standard formal italian-feast indian-thali"`
	Cuisine     string    `json:"cuisine,omitempty" validate:"omitempty,max=50"`
	Available   []string  `json:"available,omitempty" validate:"omitempty,dive,required"`
}

// Status discriminates the Result union.
type Status string

const (
	StatusSafeRecipe         Status = "safe_recipe"
	StatusNeedsClarification Status = "needs_clarification"
	StatusRefused            Status = "refused"
	StatusCombinationResult  Status = "combination_result"
	StatusCoursePlan         Status = "course_plan"
)

// Result is the engine's answer. Exactly one payload group is set,
// selected by Status: Recipe and FitScore for safe_recipe, Questions
// for needs_clarification, Reason and Alternative for refused,
// Combination for combination_result, CoursePlan for course_plan.
type Result struct {
	Status      Status              `json:"status"`
	Recipe      *recipe.Candidate   `json:"recipe,omitempty"`
	FitScore    float64             `json:"fit_score,omitempty"`
	Questions   []string            `json:"questions,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	Alternative string              `json:"alternative,omitempty"`
	Combination *combination.Result `json:"combination,omitempty"`
	CoursePlan  *course.Plan        `json:"course_plan,omitempty"`
}
