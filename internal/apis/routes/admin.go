package routes

import (
	"log"

	"djurdata-ai/internal/apis/middlewares"
	"djurdata-ai/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(router *gin.Engine) {
	adminHandler, err := di.GetAdminHandler()
	if err != nil {
		log.Fatalf("Failed to get admin handler: %v", err)
	}

	admin := router.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.POST("/block", adminHandler.BlockUser)
		admin.POST("/unblock", adminHandler.UnblockUser)
		admin.POST("/flags/review", adminHandler.ReviewFlag)
		admin.GET("/flags", adminHandler.ListFlags)
		admin.GET("/violations", adminHandler.ListViolations)
		admin.GET("/audit", adminHandler.AuditLog)
	}
}
