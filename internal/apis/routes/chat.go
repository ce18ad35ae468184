package routes

import (
	"log"

	"djurdata-ai/internal/apis/middlewares"
	"djurdata-ai/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupChatRoutes(router *gin.Engine) {
	chatHandler, err := di.GetChatHandler()
	if err != nil {
		log.Fatalf("Failed to get chat handler: %v", err)
	}

	// Chat is open to anonymous users; authenticated requests carry a
	// Bearer token and are subject to violation tracking.
	router.POST("/api/chat", middlewares.OptionalAuthMiddleware(), chatHandler.Chat)
}
