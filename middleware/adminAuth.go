package middleware

import (
	"net/http"
	"strings"

	"everafter/utils"

	"github.com/gin-gonic/gin"
)

// AdminRole is the JWT role claim carried by admin tokens.
const AdminRole = "admin"

// JWTAuthAdminMiddleware accepts a bearer token signed with secret and
// carrying the admin role, and stores its subject as "adminID".
func JWTAuthAdminMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractSubject(secret, tokenString, AdminRole)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized admin access", "")
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
