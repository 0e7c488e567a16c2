package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/storefront-dev/storefront/internal/types"
)

// GetRequestID returns the id assigned by the request id middleware, or
// "unknown" when the middleware did not run.
func GetRequestID(ctx *gin.Context) string {
	value, exists := ctx.Get(types.ContextRequestIDKey)

	if !exists {
		return "unknown"
	}

	requestID, ok := value.(string)

	if !ok {
		return "unknown"
	}

	return requestID
}
