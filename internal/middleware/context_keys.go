package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// userIDKey is the key under which the authenticated user's ID is
	// stored in the request context.
	userIDKey = contextKey("userID")

	// loggerCtxKey is the key under which the request-scoped logger is
	// stored in the request context.
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated user ID for the request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		// Should not happen if the auth middleware sets it correctly.
		return "", false
	}

	return userID, true
}
