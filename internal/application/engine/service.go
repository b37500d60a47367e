// Package engine orchestrates the safety pipeline: profile fetch,
// constraint build, gate check, generation with re-validation, and
// fallback. No recipe reaches the caller without passing the scan.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/platemind/v1/internal/domain/combination"
	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/course"
	"github.com/platemind/v1/internal/domain/gate"
	"github.com/platemind/v1/internal/domain/profile"
	"github.com/platemind/v1/internal/domain/recipe"
	"github.com/platemind/v1/internal/domain/validation"
	"github.com/platemind/v1/internal/ports/inbound"
	"github.com/platemind/v1/internal/ports/outbound"
	appErrors "github.com/platemind/v1/pkg/errors"
)

// DefaultMaxAttempts bounds the generate-validate-retry loop.
const DefaultMaxAttempts = 3

// Metrics receives engine counters. Implemented by the monitoring
// adapter; a no-op implementation is fine for tests.
type Metrics interface {
	GateDecision(outcome string)
	HardViolation(kind string)
	GenerationRetry()
	FallbackEngaged()
	FallbackExhausted()
}

// NopMetrics discards every counter.
type NopMetrics struct{}

func (NopMetrics) GateDecision(string)  {}
func (NopMetrics) HardViolation(string) {}
func (NopMetrics) GenerationRetry()     {}
func (NopMetrics) FallbackEngaged()     {}
func (NopMetrics) FallbackExhausted()   {}

// Service implements inbound.EngineService.
type Service struct {
	profiles    outbound.ProfileStore
	generator   outbound.RecipeGenerator
	fallback    outbound.FallbackSource
	audit       outbound.AuditSink
	metrics     Metrics
	limiter     *rate.Limiter
	validate    *validator.Validate
	logger      *zap.Logger
	maxAttempts int
}

// NewService wires the engine. A nil limiter disables rate limiting,
// a nil metrics falls back to NopMetrics.
func NewService(
	profiles outbound.ProfileStore,
	generator outbound.RecipeGenerator,
	fallback outbound.FallbackSource,
	audit outbound.AuditSink,
	metrics Metrics,
	limiter *rate.Limiter,
	logger *zap.Logger,
	maxAttempts int,
) *Service {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Service{
		profiles:    profiles,
		generator:   generator,
		fallback:    fallback,
		audit:       audit,
		metrics:     metrics,
		limiter:     limiter,
		validate:    validator.New(),
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

// GenerateRecipe runs the full pipeline for a single recipe request.
func (s *Service) GenerateRecipe(ctx context.Context, req inbound.RecipeRequest) (*inbound.Result, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}
	if s.limiter != nil && !s.limiter.Allow() {
		return nil, appErrors.NewRateLimitedError("recipe generation")
	}

	household, snap, cons, err := s.loadConstraints(ctx, req.HouseholdID)
	if err != nil {
		return nil, err
	}

	confirmed := make(map[string]bool, len(req.ConfirmedAvailable))
	for _, item := range req.ConfirmedAvailable {
		confirmed[strings.ToLower(strings.TrimSpace(item))] = true
	}

	decision := gate.Evaluate(snap, cons, req.Query, confirmed)
	s.metrics.GateDecision(string(decision.Outcome))
	switch decision.Outcome {
	case gate.OutcomeAsk:
		return &inbound.Result{
			Status:    inbound.StatusNeedsClarification,
			Questions: decision.Questions,
		}, nil
	case gate.OutcomeRefuse:
		s.emitAudit(ctx, outbound.AuditEventRefusal, household.ID, req.Query, decision.Reason)
		return &inbound.Result{
			Status:      inbound.StatusRefused,
			Reason:      decision.Reason,
			Alternative: decision.Alternative,
		}, nil
	}

	prefs := validation.SoftPreferences{
		SpiceTolerance:  snap.SpiceTolerance,
		FavoredCuisines: household.FavoredCuisines,
	}

	candidate, score, err := s.generateSafe(ctx, req, household, cons, prefs)
	if err != nil {
		return nil, err
	}

	return &inbound.Result{
		Status:   inbound.StatusSafeRecipe,
		Recipe:   candidate,
		FitScore: score,
	}, nil
}

// generateSafe runs the bounded generate-and-validate loop, then the
// fallback library. Every candidate, generated or fallback, passes the
// same scan before it can be returned.
func (s *Service) generateSafe(
	ctx context.Context,
	req inbound.RecipeRequest,
	household *profile.Household,
	cons constraint.Set,
	prefs validation.SoftPreferences,
) (*recipe.Candidate, float64, error) {
	var lastErr error
	var priorViolations []string

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if attempt > 1 {
			s.metrics.GenerationRetry()
		}

		payload := buildPayload(req.Query, req.CuisineHint, cons, attempt, priorViolations)
		candidate, err := s.generator.GenerateRecipe(ctx, payload)
		if err != nil {
			lastErr = err
			s.logger.Warn("recipe generation failed",
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}
		if err := candidate.Validate(); err != nil {
			lastErr = err
			s.logger.Warn("generator returned a malformed candidate",
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		report := validation.ValidateRecipe(candidate, cons, prefs)
		if report.IsSafe {
			s.logger.Info("recipe passed safety validation",
				zap.String("recipe", candidate.Name),
				zap.Int("attempt", attempt),
				zap.Float64("fit_score", report.FitScore))
			return candidate, report.FitScore, nil
		}

		priorViolations = priorViolations[:0]
		for _, v := range report.Violations {
			priorViolations = append(priorViolations, v.String())
			s.metrics.HardViolation(string(v.Kind))
		}
		lastErr = appErrors.NewUnsafeRecipeError(priorViolations)
		s.emitAudit(ctx, outbound.AuditEventViolation, household.ID, candidate.Name,
			strings.Join(priorViolations, "; "))
		s.logger.Warn("generated recipe failed safety validation",
			zap.String("recipe", candidate.Name),
			zap.Int("attempt", attempt),
			zap.Strings("violations", priorViolations))
	}

	if s.fallback != nil {
		s.metrics.FallbackEngaged()
		s.emitAudit(ctx, outbound.AuditEventFallback, household.ID, req.Query,
			fmt.Sprintf("generation exhausted after %d attempts", s.maxAttempts))

		candidate, err := s.fallback.FindSafeRecipe(ctx, cons, req.Query)
		if err == nil && candidate != nil {
			report := validation.ValidateRecipe(candidate, cons, prefs)
			if report.IsSafe {
				s.logger.Info("served recipe from fallback library",
					zap.String("recipe", candidate.Name))
				return candidate, report.FitScore, nil
			}
			lastErr = appErrors.NewUnsafeRecipeError(nil)
		} else if err != nil {
			lastErr = err
		}
	}

	s.metrics.FallbackExhausted()
	s.emitAudit(ctx, outbound.AuditEventExhausted, household.ID, req.Query,
		"no safe recipe from generation or fallback")
	return nil, 0, appErrors.NewFallbackExhaustedError(s.maxAttempts, lastErr)
}

// AnalyzeCombination scores an ingredient set for a household.
func (s *Service) AnalyzeCombination(ctx context.Context, req inbound.CombinationRequest) (*inbound.Result, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	household, snap, cons, err := s.loadConstraints(ctx, req.HouseholdID)
	if err != nil {
		return nil, err
	}

	// Scoring against an undeclared profile would be meaningless; ask
	// for the declarations first. The empty query exercises only the
	// declaration rules, never the text match.
	if decision := gate.Evaluate(snap, cons, "", nil); decision.Outcome == gate.OutcomeAsk {
		s.metrics.GateDecision(string(decision.Outcome))
		return &inbound.Result{
			Status:    inbound.StatusNeedsClarification,
			Questions: decision.Questions,
		}, nil
	}

	res := combination.Analyze(req.Ingredients, cons, strings.ToLower(req.CuisineHint))
	if len(res.SafetyIssues) > 0 {
		s.emitAudit(ctx, outbound.AuditEventViolation, household.ID,
			strings.Join(req.Ingredients, ", "),
			strings.Join(res.SafetyIssues, "; "))
	}

	return &inbound.Result{
		Status:      inbound.StatusCombinationResult,
		Combination: &res,
	}, nil
}

// ComposeMeal builds a course plan. Every course request is checked
// against the gate so a forbidden theme is refused before any course
// is generated.
func (s *Service) ComposeMeal(ctx context.Context, req inbound.MealPlanRequest) (*inbound.Result, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	household, snap, cons, err := s.loadConstraints(ctx, req.HouseholdID)
	if err != nil {
		return nil, err
	}

	plan, err := course.Compose(course.Style(req.Style), req.Cuisine, req.Available)
	if err != nil {
		return nil, appErrors.NewBadRequestError(err.Error())
	}

	for _, c := range plan.Courses {
		decision := gate.Evaluate(snap, cons, c.Request, nil)
		s.metrics.GateDecision(string(decision.Outcome))
		switch decision.Outcome {
		case gate.OutcomeAsk:
			return &inbound.Result{
				Status:    inbound.StatusNeedsClarification,
				Questions: decision.Questions,
			}, nil
		case gate.OutcomeRefuse:
			s.emitAudit(ctx, outbound.AuditEventRefusal, household.ID, c.Request, decision.Reason)
			return &inbound.Result{
				Status:      inbound.StatusRefused,
				Reason:      decision.Reason,
				Alternative: decision.Alternative,
			}, nil
		}
	}

	return &inbound.Result{
		Status:     inbound.StatusCoursePlan,
		CoursePlan: &plan,
	}, nil
}

// loadConstraints fetches the profile fresh and derives the constraint
// set. Profiles are never cached across engine calls.
func (s *Service) loadConstraints(ctx context.Context, householdID uuid.UUID) (*profile.Household, profile.ConstraintSnapshot, constraint.Set, error) {
	household, err := s.profiles.GetFullProfile(ctx, householdID)
	if err != nil {
		return nil, profile.ConstraintSnapshot{}, constraint.Set{}, err
	}
	if household == nil {
		return nil, profile.ConstraintSnapshot{}, constraint.Set{},
			appErrors.NewProfileNotFoundError(householdID.String())
	}
	// A household with no members aggregates to an undeclared snapshot;
	// the gate turns that into clarifying questions rather than an error.
	snap := profile.Aggregate(household.Members)
	cons := constraint.Build(snap, household)
	return household, snap, cons, nil
}

func (s *Service) emitAudit(ctx context.Context, typ outbound.AuditEventType, householdID uuid.UUID, subject, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Emit(ctx, outbound.AuditEvent{
		ID:          uuid.New(),
		Type:        typ,
		HouseholdID: householdID,
		Subject:     subject,
		Detail:      detail,
		OccurredAt:  time.Now().UTC(),
	})
}
