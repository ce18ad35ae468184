package routes

import (
	"net/http"

	"djurdata-ai/internal/apis/dtos"

	"github.com/gin-gonic/gin"
)

func SetupDefaultRoutes(router *gin.Engine) {
	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dtos.Response{
			Success: true,
			Data:    "Server is healthy!",
		})
	})

	// Setup all route groups
	SetupAuthRoutes(router)
	SetupChatRoutes(router)
	SetupAnimalRoutes(router)
	SetupAdminRoutes(router)
}
