package routes

import (
	"log"

	"djurdata-ai/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupAnimalRoutes(router *gin.Engine) {
	animalHandler, err := di.GetAnimalHandler()
	if err != nil {
		log.Fatalf("Failed to get animal handler: %v", err)
	}

	animals := router.Group("/api/animals")
	{
		animals.GET("", animalHandler.List)
		animals.GET("/:id", animalHandler.Details)
		animals.GET("/:id/checklists", animalHandler.Checklists)
	}
}
