// Package main runs the engine offline against the curated fallback
// library. Useful for trying the safety pipeline without an API key.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/platemind/v1/internal/application/engine"
	"github.com/platemind/v1/internal/domain/profile"
	"github.com/platemind/v1/internal/domain/recipe"
	"github.com/platemind/v1/internal/infrastructure/audit"
	"github.com/platemind/v1/internal/infrastructure/persistence/memory"
	"github.com/platemind/v1/internal/ports/inbound"
	"github.com/platemind/v1/internal/ports/outbound"
)

// offlineGenerator always declines so every request exercises the
// fallback path.
type offlineGenerator struct{}

func (offlineGenerator) GenerateRecipe(context.Context, outbound.PromptPayload) (*recipe.Candidate, error) {
	return nil, fmt.Errorf("offline mode: no generator configured")
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	store := memory.NewProfileStore()
	household := &profile.Household{
		Name:            "Demo Household",
		FavoredCuisines: []string{"mediterranean"},
		PantryLevel:     profile.PantryLevelBasic,
		Members: []profile.Member{
			{
				Name:                "Asha",
				AgeCategory:         profile.AgeCategoryAdult,
				Allergens:           []string{"peanuts"},
				DietaryRestrictions: []string{profile.RestrictionVegetarian},
				SpiceTolerance:      profile.SpiceToleranceMedium,
			},
			{
				Name:                "Ravi",
				AgeCategory:         profile.AgeCategoryChild,
				Allergens:           []string{},
				DietaryRestrictions: []string{},
				SpiceTolerance:      profile.SpiceToleranceMild,
			},
		},
	}
	if err := store.SaveProfile(ctx, household); err != nil {
		log.Fatalf("seed profile: %v", err)
	}

	svc := engine.NewService(
		store,
		offlineGenerator{},
		memory.NewFallbackLibrary(),
		audit.NewLogSink(logger),
		nil, nil, logger, 1,
	)

	query := "a warm weeknight dinner"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	result, err := svc.GenerateRecipe(ctx, inbound.RecipeRequest{
		HouseholdID: household.ID,
		Query:       query,
	})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}
