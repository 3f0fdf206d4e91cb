package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/uuid"
)

// WorkspaceKey is the gin context key holding the request's workspace ID.
const WorkspaceKey = "workspaceID"

// WorkspaceHeader carries the workspace every request is scoped to.
const WorkspaceHeader = "X-Workspace-ID"

// WorkspaceScope rejects requests without a valid X-Workspace-ID header and
// stores the workspace ID in the context for handlers.
func WorkspaceScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaceID := strings.TrimSpace(c.GetHeader(WorkspaceHeader))
		if workspaceID == "" || !uuid.IsValid(workspaceID) {
			abortWithError(c, apperrors.ErrMissingWorkspace)
			return
		}

		c.Set(WorkspaceKey, strings.ToLower(workspaceID))
		c.Next()
	}
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.StatusCode, gin.H{
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
		},
	})
}
