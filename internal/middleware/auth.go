package middleware

import (
	"net/http"
	"strings"

	"cafe-commerce/pkg/jwt"
	"cafe-commerce/pkg/response"

	"github.com/gin-gonic/gin"
)

const CustomerIDKey = "customerId"

// Auth resolves the Bearer token into a customer id stored on the context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CustomerIDKey, claims.CustomerId)
		c.Next()
	}
}

// CustomerID reads the authenticated customer id set by Auth.
func CustomerID(c *gin.Context) int64 {
	return c.GetInt64(CustomerIDKey)
}
