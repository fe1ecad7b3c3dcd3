package middleware

import (
	"errors"
	"net/http"

	"go-talent-session/internal/delivery/http/response"
	"go-talent-session/pkg/apperror"
	"go-talent-session/pkg/logger"
	"go-talent-session/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error attached by a handler. AppErrors keep
// their status and kind; anything else becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			body := response.ErrorBody{Kind: string(appErr.Kind)}
			var verrs validator.ValidationErrors
			if errors.As(appErr.Err, &verrs) {
				body.Details = validation.FormatValidationErrors(verrs)
			}
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					zap.String("request_id", c.GetString(response.RequestIDKey)),
					zap.String("path", c.FullPath()),
					zap.Error(appErr.Unwrap()),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, body)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("internal server error",
			zap.String("request_id", c.GetString(response.RequestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.",
			response.ErrorBody{Kind: string(apperror.KindInternal)})
	}
}
