package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error, for
// handlers that did not write a response themselves. Unknown errors are
// reported as INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.Get().With(
			"workspace_id", c.GetString(WorkspaceKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			log.Errorw("unexpected error", "error", err.Error())
			abortWithError(c, apperrors.ErrInternalServer)
			return
		}

		if appErr.Internal != nil {
			log.Errorw("app error",
				"code", appErr.Code,
				"kind", appErr.Kind(),
				"internal", appErr.Internal.Error(),
			)
		}
		abortWithError(c, appErr)
	}
}
