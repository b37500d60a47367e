package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/profile"
	"github.com/platemind/v1/internal/domain/recipe"
	"github.com/platemind/v1/internal/ports/inbound"
	"github.com/platemind/v1/internal/ports/outbound"
	appErrors "github.com/platemind/v1/pkg/errors"
)

type mockProfileStore struct{ mock.Mock }

func (m *mockProfileStore) GetFullProfile(ctx context.Context, householdID uuid.UUID) (*profile.Household, error) {
	args := m.Called(ctx, householdID)
	if h := args.Get(0); h != nil {
		return h.(*profile.Household), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) GenerateRecipe(ctx context.Context, payload outbound.PromptPayload) (*recipe.Candidate, error) {
	args := m.Called(ctx, payload)
	if c := args.Get(0); c != nil {
		return c.(*recipe.Candidate), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockFallback struct{ mock.Mock }

func (m *mockFallback) FindSafeRecipe(ctx context.Context, cons constraint.Set, query string) (*recipe.Candidate, error) {
	args := m.Called(ctx, cons, query)
	if c := args.Get(0); c != nil {
		return c.(*recipe.Candidate), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAuditSink struct {
	mock.Mock
	events []outbound.AuditEvent
}

func (m *mockAuditSink) Emit(ctx context.Context, event outbound.AuditEvent) {
	m.events = append(m.events, event)
}

func veganHousehold(id uuid.UUID) *profile.Household {
	return &profile.Household{
		ID:              id,
		Name:            "Vegan Household",
		FavoredCuisines: []string{"italian"},
		Members: []profile.Member{{
			Name:                "Host",
			AgeCategory:         profile.AgeCategoryAdult,
			Allergens:           []string{},
			DietaryRestrictions: []string{profile.RestrictionVegan},
			SpiceTolerance:      profile.SpiceToleranceMedium,
		}},
	}
}

func safeVeganCandidate() *recipe.Candidate {
	return &recipe.Candidate{
		Name:         "Tomato Basil Pasta",
		Cuisine:      "italian",
		Ingredients:  []string{"pasta", "tomato", "basil", "olive oil", "garlic"},
		Instructions: []string{"Boil pasta.", "Simmer sauce.", "Combine and serve."},
		Servings:     4,
		SpiceLevel:   "mild",
	}
}

func newTestService(profiles *mockProfileStore, gen *mockGenerator, fb *mockFallback, audit *mockAuditSink) *Service {
	return NewService(profiles, gen, fb, audit, nil, nil, zap.NewNop(), 3)
}

func TestGenerateRecipe_HappyPath(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	gen := new(mockGenerator)
	fb := new(mockFallback)
	audit := new(mockAuditSink)

	profiles.On("GetFullProfile", mock.Anything, id).Return(veganHousehold(id), nil)
	gen.On("GenerateRecipe", mock.Anything, mock.Anything).Return(safeVeganCandidate(), nil).Once()

	svc := newTestService(profiles, gen, fb, audit)
	res, err := svc.GenerateRecipe(context.Background(), inbound.RecipeRequest{
		HouseholdID: id,
		Query:       "a cozy pasta dinner",
	})

	require.NoError(t, err)
	assert.Equal(t, inbound.StatusSafeRecipe, res.Status)
	require.NotNil(t, res.Recipe)
	assert.Equal(t, "Tomato Basil Pasta", res.Recipe.Name)
	// italian favored cuisine and tolerated spice both count
	assert.InDelta(t, 1.0, res.FitScore, 0.001)
	assert.Empty(t, audit.events)
}

func TestGenerateRecipe_RetriesOnUnsafeCandidate(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	gen := new(mockGenerator)
	fb := new(mockFallback)
	audit := new(mockAuditSink)

	unsafe := safeVeganCandidate()
	unsafe.Name = "Creamy Pasta"
	unsafe.Ingredients = []string{"pasta", "butter", "cream"}

	profiles.On("GetFullProfile", mock.Anything, id).Return(veganHousehold(id), nil)
	gen.On("GenerateRecipe", mock.Anything, mock.Anything).Return(unsafe, nil).Once()
	gen.On("GenerateRecipe", mock.Anything, mock.MatchedBy(func(p outbound.PromptPayload) bool {
		return len(p.PriorViolations) > 0
	})).Return(safeVeganCandidate(), nil).Once()

	svc := newTestService(profiles, gen, fb, audit)
	res, err := svc.GenerateRecipe(context.Background(), inbound.RecipeRequest{
		HouseholdID: id,
		Query:       "a cozy pasta dinner",
	})

	require.NoError(t, err)
	assert.Equal(t, inbound.StatusSafeRecipe, res.Status)
	gen.AssertNumberOfCalls(t, "GenerateRecipe", 2)

	// The unsafe attempt produced an audit event
	require.Len(t, audit.events, 1)
	assert.Equal(t, outbound.AuditEventViolation, audit.events[0].Type)
}

func TestGenerateRecipe_FallbackAfterExhaustedRetries(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	gen := new(mockGenerator)
	fb := new(mockFallback)
	audit := new(mockAuditSink)

	unsafe := safeVeganCandidate()
	unsafe.Ingredients = []string{"pasta", "butter"}

	profiles.On("GetFullProfile", mock.Anything, id).Return(veganHousehold(id), nil)
	gen.On("GenerateRecipe", mock.Anything, mock.Anything).Return(unsafe, nil).Times(3)
	fb.On("FindSafeRecipe", mock.Anything, mock.Anything, mock.Anything).Return(safeVeganCandidate(), nil).Once()

	svc := newTestService(profiles, gen, fb, audit)
	res, err := svc.GenerateRecipe(context.Background(), inbound.RecipeRequest{
		HouseholdID: id,
		Query:       "a cozy pasta dinner",
	})

	require.NoError(t, err)
	assert.Equal(t, inbound.StatusSafeRecipe, res.Status)

	var types []outbound.AuditEventType
	for _, e := range audit.events {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, outbound.AuditEventFallback)
}

func TestGenerateRecipe_FallbackExhausted(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	gen := new(mockGenerator)
	fb := new(mockFallback)
	audit := new(mockAuditSink)

	profiles.On("GetFullProfile", mock.Anything, id).Return(veganHousehold(id), nil)
	gen.On("GenerateRecipe", mock.Anything, mock.Anything).Return(nil, errors.New("model unavailable"))
	fb.On("FindSafeRecipe", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("no match"))

	svc := newTestService(profiles, gen, fb, audit)
	res, err := svc.GenerateRecipe(context.Background(), inbound.RecipeRequest{
		HouseholdID: id,
		Query:       "a cozy pasta dinner",
	})

	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, appErrors.Is(err, appErrors.CodeFallbackExhausted))

	var types []outbound.AuditEventType
	for _, e := range audit.events {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, outbound.AuditEventExhausted)
}

func TestGenerateRecipe_GateRefusalSkipsGeneration(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	gen := new(mockGenerator)
	fb := new(mockFallback)
	audit := new(mockAuditSink)

	profiles.On("GetFullProfile", mock.Anything, id).Return(veganHousehold(id), nil)

	svc := newTestService(profiles, gen, fb, audit)
	res, err := svc.GenerateRecipe(context.Background(), inbound.RecipeRequest{
		HouseholdID: id,
		Query:       "butter chicken for dinner",
	})

	require.NoError(t, err)
	assert.Equal(t, inbound.StatusRefused, res.Status)
	assert.NotEmpty(t, res.Reason)
	gen.AssertNotCalled(t, "GenerateRecipe", mock.Anything, mock.Anything)

	require.Len(t, audit.events, 1)
	assert.Equal(t, outbound.AuditEventRefusal, audit.events[0].Type)
}

func TestGenerateRecipe_IncompleteProfileAsks(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	gen := new(mockGenerator)
	fb := new(mockFallback)
	audit := new(mockAuditSink)

	household := veganHousehold(id)
	household.Members[0].Allergens = nil

	profiles.On("GetFullProfile", mock.Anything, id).Return(household, nil)

	svc := newTestService(profiles, gen, fb, audit)
	res, err := svc.GenerateRecipe(context.Background(), inbound.RecipeRequest{
		HouseholdID: id,
		Query:       "a cozy pasta dinner",
	})

	require.NoError(t, err)
	assert.Equal(t, inbound.StatusNeedsClarification, res.Status)
	assert.NotEmpty(t, res.Questions)
	gen.AssertNotCalled(t, "GenerateRecipe", mock.Anything, mock.Anything)
}

func TestGenerateRecipe_ValidatesRequest(t *testing.T) {
	svc := newTestService(new(mockProfileStore), new(mockGenerator), new(mockFallback), new(mockAuditSink))

	_, err := svc.GenerateRecipe(context.Background(), inbound.RecipeRequest{
		HouseholdID: uuid.New(),
		Query:       "hi",
	})

	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.CodeValidationFailed))
}

func TestAnalyzeCombination_FlagsUnsafeIngredients(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	audit := new(mockAuditSink)

	household := veganHousehold(id)
	household.Members[0].DietaryRestrictions = []string{}
	household.Members[0].Allergens = []string{"peanuts", "shellfish"}

	profiles.On("GetFullProfile", mock.Anything, id).Return(household, nil)

	svc := newTestService(profiles, new(mockGenerator), new(mockFallback), audit)
	res, err := svc.AnalyzeCombination(context.Background(), inbound.CombinationRequest{
		HouseholdID: id,
		Ingredients: []string{"shrimp", "garlic", "rice"},
	})

	require.NoError(t, err)
	require.Equal(t, inbound.StatusCombinationResult, res.Status)
	require.NotNil(t, res.Combination)
	assert.False(t, res.Combination.IsViable)
	assert.NotEmpty(t, res.Combination.SafetyIssues)
	require.Len(t, audit.events, 1)
}

func TestGenerateRecipe_EmptyHouseholdAsksForDeclarations(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	gen := new(mockGenerator)

	household := veganHousehold(id)
	household.Members = nil

	profiles.On("GetFullProfile", mock.Anything, id).Return(household, nil)

	svc := newTestService(profiles, gen, new(mockFallback), new(mockAuditSink))
	res, err := svc.GenerateRecipe(context.Background(), inbound.RecipeRequest{
		HouseholdID: id,
		Query:       "a cozy pasta dinner",
	})

	require.NoError(t, err)
	assert.Equal(t, inbound.StatusNeedsClarification, res.Status)
	assert.Len(t, res.Questions, 2)
	gen.AssertNotCalled(t, "GenerateRecipe", mock.Anything, mock.Anything)
}

func TestAnalyzeCombination_UndeclaredProfileAsks(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)

	household := veganHousehold(id)
	household.Members[0].Allergens = nil
	household.Members[0].DietaryRestrictions = nil

	profiles.On("GetFullProfile", mock.Anything, id).Return(household, nil)

	svc := newTestService(profiles, new(mockGenerator), new(mockFallback), new(mockAuditSink))
	res, err := svc.AnalyzeCombination(context.Background(), inbound.CombinationRequest{
		HouseholdID: id,
		Ingredients: []string{"shrimp", "garlic", "rice"},
	})

	require.NoError(t, err)
	assert.Equal(t, inbound.StatusNeedsClarification, res.Status)
	assert.Len(t, res.Questions, 2)
	assert.Nil(t, res.Combination)
}

func TestAnalyzeCombination_CuisineHintReachesRanking(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)

	household := veganHousehold(id)
	household.Members[0].DietaryRestrictions = []string{}

	profiles.On("GetFullProfile", mock.Anything, id).Return(household, nil)

	svc := newTestService(profiles, new(mockGenerator), new(mockFallback), new(mockAuditSink))
	res, err := svc.AnalyzeCombination(context.Background(), inbound.CombinationRequest{
		HouseholdID: id,
		Ingredients: []string{"rice", "ginger"},
		CuisineHint: "Thai",
	})

	require.NoError(t, err)
	require.Equal(t, inbound.StatusCombinationResult, res.Status)
	require.NotEmpty(t, res.Combination.CuisineMatches)
	assert.Equal(t, "thai", res.Combination.CuisineMatches[0].Cuisine)
}

func TestComposeMeal_GatesEveryCourse(t *testing.T) {
	id := uuid.New()
	profiles := new(mockProfileStore)
	profiles.On("GetFullProfile", mock.Anything, id).Return(veganHousehold(id), nil)

	svc := newTestService(profiles, new(mockGenerator), new(mockFallback), new(mockAuditSink))
	res, err := svc.ComposeMeal(context.Background(), inbound.MealPlanRequest{
		HouseholdID: id,
		Style:       "formal",
		Cuisine:     "italian",
	})

	require.NoError(t, err)
	require.Equal(t, inbound.StatusCoursePlan, res.Status)
	require.NotNil(t, res.CoursePlan)
	assert.Len(t, res.CoursePlan.Courses, 5)
	assert.Len(t, res.CoursePlan.PrepOrder, 5)
}

func TestComposeMeal_RejectsUnknownStyle(t *testing.T) {
	svc := newTestService(new(mockProfileStore), new(mockGenerator), new(mockFallback), new(mockAuditSink))

	_, err := svc.ComposeMeal(context.Background(), inbound.MealPlanRequest{
		HouseholdID: uuid.New(),
		Style:       "banquet",
		Cuisine:     "italian",
	})

	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.CodeValidationFailed))
}
