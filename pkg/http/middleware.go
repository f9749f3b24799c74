package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vitanet.io/elder-care-service/pkg/auth"
	"vitanet.io/elder-care-service/pkg/models"
)

const (
	ctxKeyUserID = "userID"
	ctxKeyRole   = "role"
)

func (rs *RestfulServer) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := rs.Tokens.ValidateToken(auth.ExtractToken(authHeader))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyRole, string(claims.Role))
		c.Next()
	}
}

// RequireAdmin must run after RequireSession.
func (rs *RestfulServer) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxKeyRole) != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}
