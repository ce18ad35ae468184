package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client              *genai.Client
	model               string
	maxCompletionTokens int
	temperature         float64
}

func NewGeminiClient(config Config) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &GeminiClient{
		client:              client,
		model:               config.Model,
		maxCompletionTokens: config.MaxCompletionTokens,
		temperature:         config.Temperature,
	}, nil
}

func (c *GeminiClient) StreamCompletion(ctx context.Context, systemPrompt string, messages []Message) (Stream, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	model := c.client.GenerativeModel(c.model)
	maxTokens := int32(c.maxCompletionTokens)
	model.MaxOutputTokens = &maxTokens
	model.SetTemperature(float32(c.temperature))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	// The last user turn is sent as the message; everything before it is
	// chat history.
	history := make([]*genai.Content, 0, len(messages))
	last := ""
	for i, msg := range messages {
		if msg.Content == "" {
			continue
		}
		if i == len(messages)-1 && msg.Role == "user" {
			last = msg.Content
			break
		}
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	if last == "" {
		last = "Svara baserat på konversationen ovan."
	}

	session := model.StartChat()
	session.History = history

	iter := session.SendMessageStream(ctx, genai.Text(last))
	return &geminiStream{iter: iter}, nil
}

func (c *GeminiClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:                c.model,
		Provider:            "gemini",
		MaxCompletionTokens: c.maxCompletionTokens,
	}
}

type geminiStream struct {
	iter *genai.GenerateContentResponseIterator
}

func (s *geminiStream) Recv() (string, error) {
	resp, err := s.iter.Next()
	if err == iterator.Done {
		return "", io.EOF
	}
	if err != nil {
		return "", mapGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	return text, nil
}

func (s *geminiStream) Close() error {
	return nil
}

func mapGeminiError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		switch gErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		}
	}
	return err
}
