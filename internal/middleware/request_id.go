package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront-dev/storefront/internal/types"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one,
// stores it on the context and echoes it back.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(types.RequestIDHeader)

		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx.Set(types.ContextRequestIDKey, requestID)
		ctx.Header(types.RequestIDHeader, requestID)
		ctx.Next()
	}
}
