package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-matchjobs-backend/internal/delivery/http/response"
	"go-matchjobs-backend/pkg/apperror"
	"go-matchjobs-backend/pkg/logger"
)

// ErrorHandler drains errors appended to the gin context and maps them to
// HTTP responses. AppErrors carry their own status code; anything else is a
// 500. The underlying message is surfaced to the caller either way.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed", "path", c.Request.URL.Path, "error", err)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		response.Error(c, http.StatusInternalServerError, fmt.Sprintf("Erro: %v", err))
	}
}
