package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "wealthyways/internal/errors"
	"wealthyways/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context with c.Error into
// the JSON error envelope. It only writes when the handler has not already
// written a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"request_id", c.GetString(RequestIDKey),
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
