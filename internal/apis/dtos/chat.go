package dtos

type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages     []ChatMessage `json:"messages" binding:"required,min=1"`
	AnimalID     *string       `json:"animal_id"`
	IsGlobalMode bool          `json:"is_global_mode"`
	// UserID is optional; anonymous chat is validated but never tracked in
	// the violation ledger.
	UserID *string `json:"user_id"`
}

// ChatRejection is the JSON body returned when a chat request is refused
// before any streaming starts.
type ChatRejection struct {
	Error   string `json:"error"`
	Flagged bool   `json:"flagged,omitempty"`
	Blocked bool   `json:"blocked,omitempty"`
}

// StreamChunk mirrors the completion-API delta frame relayed to clients.
type StreamChunk struct {
	Choices []StreamChoice `json:"choices"`
}

type StreamChoice struct {
	Delta StreamDelta `json:"delta"`
}

type StreamDelta struct {
	Content string `json:"content"`
}
