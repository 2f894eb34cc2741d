package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID set by the auth
// middleware. It returns the user ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
