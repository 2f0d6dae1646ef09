package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cloud-storage-api/internal/application/ports"
)

const (
	CtxUserID    = "userID"
	CtxUserLogin = "userLogin"
)

// ExtractToken pulls the bearer value from the Authorization header first,
// then falls back to the auth-token header. A "Bearer " prefix is tolerated
// in either place.
func ExtractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return strings.TrimPrefix(c.GetHeader("auth-token"), "Bearer ")
}

// AuthMiddleware resolves the bearer token into the acting user and aborts
// with 401 before any file operation otherwise.
func AuthMiddleware(tokens ports.TokenAuthority) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing auth token"},
			)
			return
		}

		ok, err := tokens.Validate(c.Request.Context(), tokenStr)
		if err != nil || !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		u, err := tokens.ResolveUser(c.Request.Context(), tokenStr)
		if err != nil || u == nil {
			// a valid token without a user is a store inconsistency
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "user not found"},
			)
			return
		}

		c.Set(CtxUserID, uint64(u.ID))
		c.Set(CtxUserLogin, u.Login)

		c.Next()
	}
}
