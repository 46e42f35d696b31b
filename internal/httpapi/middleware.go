package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/udalba/campusmarket/internal/auth"
)

const emailKey = "account_email"

// RequireAuth checks the bearer token and stores the caller's email in the
// gin context. Services never see the token; they get the email explicitly.
func RequireAuth(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no bearer token"})
			return
		}

		email, err := auth.GetEmailFromToken(strings.TrimPrefix(header, "Bearer "), secretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(emailKey, email)
		c.Next()
	}
}

func currentEmail(c *gin.Context) string {
	return c.GetString(emailKey)
}
