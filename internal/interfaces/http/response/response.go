package response

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	appErr := domainerrors.From(err)
	if appErr.Code == domainerrors.CodeInternalError {
		ctx := context.Background()
		if c.Request != nil {
			ctx = c.Request.Context()
		}
		logger.Error(ctx, "Request failed", zap.Error(err))
	}

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if appErr.Code == domainerrors.CodeInvalidTransition {
		body["from"] = appErr.From
		body["to"] = appErr.To
	}
	if appErr.Retryable() {
		body["retryable"] = true
	}
	c.JSON(appErr.Status, body)
}

// ErrorWithError sends an error response with a specific status and code
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

// AbortWithError writes the error response and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
