package middleware

import (
	"fmt"
	"log"
	"runtime/debug"

	"djurdata-ai/internal/apis/dtos"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a handler panic into a 500 response envelope
// instead of a dropped connection. The stack trace goes to the log; the
// panic value reaches the client only in debug mode.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v\n%s", r, debug.Stack())

				errorMsg := "Internal Server Error"
				if gin.IsDebugging() {
					errorMsg = fmt.Sprintf("Internal Server Error: %v", r)
				}
				c.AbortWithStatusJSON(500, dtos.Response{
					Success: false,
					Error:   &errorMsg,
				})
			}
		}()
		c.Next()
	}
}
