package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is a structured error surfaced to HTTP callers.
type APIError struct {
	Code    int
	Message string
}

type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc into a gin handler, rendering
// either the result or the structured error as JSON.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
