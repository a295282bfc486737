package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/community-blog-api/pkg/helpers"
	"github.com/oksasatya/community-blog-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// BearerAuth validates the Authorization header token and injects the
// caller identity into the Gin context. Token validity alone authorizes the
// call; session rows are never consulted.
func BearerAuth(tm *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c.GetHeader("Authorization"))
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		claims, err := tm.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func extractBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// CallerID reads the authenticated user id set by BearerAuth.
func CallerID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
