package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"djurdata-ai/internal/apis/dtos"
	"djurdata-ai/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService services.IChatService
}

func NewChatHandler(chatService services.IChatService) *ChatHandler {
	if chatService == nil {
		log.Fatal("Chat service cannot be nil")
	}
	return &ChatHandler{
		chatService: chatService,
	}
}

// @Summary Chat
// @Description Run a moderated chat completion and stream the answer
// @Accept json
// @Produce text/event-stream
// @Param chatRequest body dtos.ChatRequest true "Chat request"
// @Success 200 {string} string "SSE stream"
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dtos.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	// An authenticated request pins the user id from the token; the body
	// field only matters for clients without an account.
	if userID := c.GetString("userID"); userID != "" {
		req.UserID = &userID
	}

	ctx := c.Request.Context()

	rejection, statusCode, err := h.chatService.Admit(ctx, &req)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}
	if rejection != nil {
		c.JSON(int(statusCode), rejection)
		return
	}

	stream, statusCode, err := h.chatService.OpenStream(ctx, &req)
	if err != nil {
		log.Printf("upstream completion call failed: %v", err)
		c.JSON(int(statusCode), dtos.ChatRejection{
			Error: services.UpstreamErrorMessage(statusCode),
		})
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Transfer-Encoding", "chunked")

	for {
		select {
		case <-ctx.Done():
			log.Printf("client disconnected mid-stream")
			return
		default:
		}

		content, err := stream.Recv()
		if err == io.EOF {
			c.Writer.Write([]byte("data: [DONE]\n\n"))
			c.Writer.Flush()
			return
		}
		if err != nil {
			// Headers are already sent; the best we can do is end the
			// stream so the client's reassembly stops cleanly.
			log.Printf("stream receive failed: %v", err)
			c.Writer.Write([]byte("data: [DONE]\n\n"))
			c.Writer.Flush()
			return
		}
		if content == "" {
			continue
		}

		data, err := json.Marshal(dtos.StreamChunk{
			Choices: []dtos.StreamChoice{
				{Delta: dtos.StreamDelta{Content: content}},
			},
		})
		if err != nil {
			log.Printf("Error marshaling chunk: %v", err)
			continue
		}
		c.Writer.Write([]byte(fmt.Sprintf("data: %s\n\n", data)))
		c.Writer.Flush()
	}
}
