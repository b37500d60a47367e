// Package errors provides structured error handling for the engine
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

// Error codes for the safety engine and its adapters
const (
	// Generic errors
	CodeBadRequest           ErrorCode = "BAD_REQUEST"
	CodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeTooManyRequests      ErrorCode = "TOO_MANY_REQUESTS"

	// Safety-engine errors
	CodeProfileIncomplete  ErrorCode = "PROFILE_INCOMPLETE"
	CodeConstraintConflict ErrorCode = "CONSTRAINT_CONFLICT"
	CodeUnsafeRecipe       ErrorCode = "UNSAFE_RECIPE"
	CodeFallbackExhausted  ErrorCode = "FALLBACK_EXHAUSTED"
	CodeProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"
)

// AppError represents an application error with structured information
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// Predefined error constructors for common scenarios

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewExternalServiceError creates an external service error
func NewExternalServiceError(service string, cause error) *AppError {
	return NewAppError(
		CodeExternalServiceError,
		"External service error",
		fmt.Sprintf("Failed to communicate with %s", service),
	).WithCause(cause)
}

// Safety-engine specific errors

// NewProfileIncompleteError indicates required dietary declarations are missing.
// It is surfaced to the caller as a clarification request, never silently defaulted.
func NewProfileIncompleteError(missing string) *AppError {
	return NewAppError(
		CodeProfileIncomplete,
		"Household profile is incomplete",
		fmt.Sprintf("Missing required declaration: %s", missing),
	).WithMetadata("missing_declaration", missing)
}

// NewConstraintConflictError indicates the request textually conflicts with a
// hard constraint and is surfaced as a refusal with an explanation.
func NewConstraintConflictError(ingredient, restriction string) *AppError {
	return NewAppError(
		CodeConstraintConflict,
		"Request conflicts with a dietary restriction",
		fmt.Sprintf("%q is forbidden by the %s restriction", ingredient, restriction),
	).WithMetadata("ingredient", ingredient).WithMetadata("restriction", restriction)
}

// NewUnsafeRecipeError indicates generated content failed the post-generation
// scan. The pipeline retries internally; callers see it only via logs.
func NewUnsafeRecipeError(violations []string) *AppError {
	return NewAppError(
		CodeUnsafeRecipe,
		"Generated recipe failed safety validation",
		strings.Join(violations, "; "),
	).WithMetadata("violations", violations)
}

// NewFallbackExhaustedError indicates all generation retries and fallback
// sources failed. Terminal: the caller receives no recipe.
func NewFallbackExhaustedError(attempts int, cause error) *AppError {
	return NewAppError(
		CodeFallbackExhausted,
		"No safe recipe could be produced",
		fmt.Sprintf("Exhausted %d generation attempts and all fallback sources", attempts),
	).WithMetadata("attempts", attempts).WithCause(cause)
}

// NewProfileNotFoundError creates a profile not found error
func NewProfileNotFoundError(householdID string) *AppError {
	return NewAppError(
		CodeProfileNotFound,
		"Household profile not found",
		fmt.Sprintf("Household with ID %s does not exist", householdID),
	).WithMetadata("household_id", householdID)
}

// NewRateLimitedError creates a rate limited error
func NewRateLimitedError(operation string) *AppError {
	return NewAppError(
		CodeTooManyRequests,
		"Rate limit exceeded",
		fmt.Sprintf("Too many %s requests", operation),
	).WithMetadata("operation", operation)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "pkg/errors") {
			builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return builder.String()
}

// ErrorResponse represents a caller-facing error payload
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in caller-facing payloads
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ToErrorResponse converts an AppError to a caller-facing payload
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			RequestID: requestID,
			Timestamp: fmt.Sprintf("%d", time.Now().Unix()),
		},
	}
}
