package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/logger"
	"budgetcore/internal/middleware"
	"budgetcore/internal/uuid"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// getWorkspaceID extracts the workspace the request is scoped to.
// Returns ErrMissingWorkspace if the scoping middleware did not run.
func getWorkspaceID(c *gin.Context) (string, error) {
	workspaceID := c.GetString(middleware.WorkspaceKey)
	if workspaceID == "" {
		return "", apperrors.ErrMissingWorkspace
	}
	return workspaceID, nil
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return strings.ToLower(id), nil
}

// optionalQueryID reads an optional UUID query parameter.
func optionalQueryID(c *gin.Context, key string) (*string, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	if !uuid.IsValid(v) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+key)
	}
	v = strings.ToLower(v)
	return &v, nil
}

// bindError converts a binding failure into an INVALID_INPUT error.
func bindError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"workspace_id", c.GetString(middleware.WorkspaceKey),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
