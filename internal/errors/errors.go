// Package errors provides custom error types for the budgetcore API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// Kind classifies an AppError for callers that do not care about the
// specific code: NotFound and Conflict are recoverable by the caller,
// Validation marks a rejected request, Internal an unexpected failure.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so a wrapped or re-messaged sentinel still
// satisfies errors.Is against the original.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Kind derives the error kind from the HTTP status.
func (e *AppError) Kind() Kind {
	switch e.StatusCode {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindInternal
	}
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Workspace scoping errors.
var (
	ErrMissingWorkspace = &AppError{Code: "MISSING_WORKSPACE", Message: "A valid X-Workspace-ID header is required", StatusCode: http.StatusBadRequest}
)

// Pipeline intake errors.
var (
	ErrPipelineNotConfigured = &AppError{Code: "PIPELINE_NOT_CONFIGURED", Message: "Pipeline endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
	ErrInvalidAPIKey         = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Collaborator lookup errors.
var (
	ErrAccountNotFound     = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrPayeeNotFound       = &AppError{Code: "PAYEE_NOT_FOUND", Message: "Payee not found", StatusCode: http.StatusNotFound}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetNotFound          = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAssociation    = &AppError{Code: "DUPLICATE_ASSOCIATION", Message: "Budget association listed more than once", StatusCode: http.StatusConflict}
	ErrInvalidBudgetType       = &AppError{Code: "INVALID_BUDGET_TYPE", Message: "Unsupported budget type", StatusCode: http.StatusBadRequest}
	ErrInvalidEnforcementLevel = &AppError{Code: "INVALID_ENFORCEMENT_LEVEL", Message: "Unsupported enforcement level", StatusCode: http.StatusBadRequest}
)

// Period errors.
var (
	ErrTemplateNotFound      = &AppError{Code: "TEMPLATE_NOT_FOUND", Message: "Budget period template not found", StatusCode: http.StatusNotFound}
	ErrPeriodNotFound        = &AppError{Code: "PERIOD_NOT_FOUND", Message: "Budget period not found", StatusCode: http.StatusNotFound}
	ErrInvalidPeriodTemplate = &AppError{Code: "INVALID_PERIOD_TEMPLATE", Message: "Malformed budget period template", StatusCode: http.StatusBadRequest}
	ErrPeriodOverlap         = &AppError{Code: "PERIOD_OVERLAP", Message: "Period overlaps an existing period of the same template", StatusCode: http.StatusConflict}
)

// Allocation and enforcement errors.
var (
	ErrAllocationNotFound = &AppError{Code: "ALLOCATION_NOT_FOUND", Message: "Allocation not found", StatusCode: http.StatusNotFound}
	ErrInvalidAllocation  = &AppError{Code: "INVALID_ALLOCATION", Message: "Allocation amount must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrBudgetExceeded     = &AppError{Code: "BUDGET_EXCEEDED", Message: "Allocation exceeds the remaining budget and the budget is strictly enforced", StatusCode: http.StatusUnprocessableEntity}
)

// Recommendation errors.
var (
	ErrRecommendationNotFound     = &AppError{Code: "RECOMMENDATION_NOT_FOUND", Message: "Recommendation not found", StatusCode: http.StatusNotFound}
	ErrRecommendationNotPending   = &AppError{Code: "RECOMMENDATION_NOT_PENDING", Message: "Recommendation is not pending", StatusCode: http.StatusConflict}
	ErrRecommendationNotDismissed = &AppError{Code: "RECOMMENDATION_NOT_DISMISSED", Message: "Recommendation is not dismissed", StatusCode: http.StatusConflict}
	ErrUnsupportedRecommendation  = &AppError{Code: "UNSUPPORTED_RECOMMENDATION", Message: "Recommendation type cannot be applied", StatusCode: http.StatusBadRequest}
)
