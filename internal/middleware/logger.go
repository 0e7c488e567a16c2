package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/storefront-dev/storefront/internal/utils"
)

func LoggerMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		status := ctx.Writer.Status()
		event := logger.Info()

		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}

		if len(ctx.Errors) > 0 {
			event = event.Str("errors", ctx.Errors.String())
		}

		event.
			Str("request_id", utils.GetRequestID(ctx)).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", ctx.ClientIP()).
			Msg("request completed")
	}
}

// RecoverMiddleware turns a panic into a 500 and logs the stack.
func RecoverMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error().
					Str("request_id", utils.GetRequestID(ctx)).
					Str("method", ctx.Request.Method).
					Str("path", ctx.Request.URL.Path).
					Str("error", fmt.Sprintf("%v", err)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			}
		}()

		ctx.Next()
	}
}
