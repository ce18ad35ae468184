package middlewares

import (
	"log"
	"strings"

	"djurdata-ai/internal/di"
	"djurdata-ai/internal/utils"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware sets userID when a valid Bearer token is present and
// lets the request through anonymously otherwise. Used on the chat endpoint,
// where anonymous use is allowed but identified users are tracked.
func OptionalAuthMiddleware() gin.HandlerFunc {
	if jwtService == nil {
		if err := di.DiContainer.Invoke(func(service utils.JWTService) {
			jwtService = &service
		}); err != nil {
			log.Fatalf("Failed to provide JWT service: %v", err)
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := (*jwtService).ValidateToken(parts[1]); err == nil {
				c.Set("userID", *claims)
			}
		}
		c.Next()
	}
}
