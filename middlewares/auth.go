package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/parthdk16/Restaurant-Management-System-sub001/utils"
)

// RevokedFunc reports whether a token id has been signed out. A nil func
// disables the check (no Redis configured).
type RevokedFunc func(ctx context.Context, jti string) bool

// AuthMiddleware validates the bearer token and (if given) enforces a
// role. Identity lands on the gin context for handlers downstream.
func AuthMiddleware(secret string, revoked RevokedFunc, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		var claims utils.Claims
		token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		if revoked != nil && revoked(c.Request.Context(), claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "token revoked"})
			c.Abort()
			return
		}

		c.Set("adminId", claims.AdminID)
		c.Set("role", claims.Role)
		c.Set("jti", claims.ID)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
