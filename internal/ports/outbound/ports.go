// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces the engine uses to reach external collaborators
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/profile"
	"github.com/platemind/v1/internal/domain/recipe"
)

// ProfileStore supplies the household profile snapshot. The engine calls
// it fresh on every invocation and never caches the result across calls:
// staleness would risk serving an unsafe recipe after a constraint change.
type ProfileStore interface {
	GetFullProfile(ctx context.Context, householdID uuid.UUID) (*profile.Household, error)
}

// RecipeGenerator is the external generative engine. Its output is
// untrusted and always re-validated by the caller.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, payload PromptPayload) (*recipe.Candidate, error)
}

// PromptPayload carries the rendered constraint text plus request context
// sent to the generator.
type PromptPayload struct {
	Query           string
	CuisineHint     string
	HardConstraints string
	SoftConstraints string

	// Retry context: attempt number and the violations that failed the
	// previous attempt, appended to the amended prompt.
	Attempt         int
	PriorViolations []string
}

// FallbackSource is a pre-validated recipe library consulted after
// generation retries are exhausted.
type FallbackSource interface {
	FindSafeRecipe(ctx context.Context, cons constraint.Set, query string) (*recipe.Candidate, error)
}

// AuditSink receives structured safety events. Emission is
// fire-and-forget from the engine's perspective.
type AuditSink interface {
	Emit(ctx context.Context, event AuditEvent)
}

// AuditEventType discriminates audit events
type AuditEventType string

const (
	AuditEventViolation AuditEventType = "hard_constraint_violation"
	AuditEventRefusal   AuditEventType = "gate_refusal"
	AuditEventFallback  AuditEventType = "fallback_engaged"
	AuditEventExhausted AuditEventType = "fallback_exhausted"
)

// AuditEvent is one structured safety event
type AuditEvent struct {
	ID          uuid.UUID      `json:"id"`
	Type        AuditEventType `json:"type"`
	HouseholdID uuid.UUID      `json:"household_id"`
	Subject     string         `json:"subject"`
	Detail      string         `json:"detail"`
	OccurredAt  time.Time      `json:"occurred_at"`
}
