package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
)

// PipelineAuthMiddleware guards the intake used by the analysis pipeline that
// submits recommendation drafts. The X-API-Key header must match apiKey; an
// empty apiKey disables the intake.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrPipelineNotConfigured)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
