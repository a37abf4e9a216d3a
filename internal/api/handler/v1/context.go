package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gardenhub/garden-api/internal/api/handler/v1/response"
	"github.com/gardenhub/garden-api/internal/api/middleware"
)

// getCallerID reads the authenticated user id stored by the JWT
// middleware.
func getCallerID(ctx *gin.Context) (string, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return "", response.ErrTokenMissing()
	}

	callerID, ok := value.(string)
	if !ok || callerID == "" {
		return "", response.ErrTokenInvalid(errors.New("caller identity missing from context"))
	}

	return callerID, nil
}
