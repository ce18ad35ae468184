package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"djurdata-ai/config"
	"djurdata-ai/internal/apis/dtos"
	"djurdata-ai/internal/constants"
	"djurdata-ai/pkg/llm"
)

// IChatService runs the moderated chat pipeline. Admit applies the block
// check and message validation; OpenStream builds the system prompt and opens
// the upstream completion stream. The split lets the handler return a JSON
// rejection before any SSE headers are written.
type IChatService interface {
	Admit(ctx context.Context, req *dtos.ChatRequest) (*dtos.ChatRejection, uint, error)
	OpenStream(ctx context.Context, req *dtos.ChatRequest) (llm.Stream, uint, error)
}

type ChatService struct {
	validator         *MessageValidator
	moderationService IModerationService
	promptBuilder     *PromptBuilder
	llmManager        *llm.Manager
}

func NewChatService(validator *MessageValidator, moderationService IModerationService, promptBuilder *PromptBuilder, llmManager *llm.Manager) *ChatService {
	return &ChatService{
		validator:         validator,
		moderationService: moderationService,
		promptBuilder:     promptBuilder,
		llmManager:        llmManager,
	}
}

func (s *ChatService) Admit(ctx context.Context, req *dtos.ChatRequest) (*dtos.ChatRejection, uint, error) {
	// Blocked users are turned away before their message is even read.
	if req.UserID != nil {
		blocked, _ := s.moderationService.IsBlocked(ctx, *req.UserID)
		if blocked {
			return &dtos.ChatRejection{
				Error:   constants.MsgAccountBlocked,
				Blocked: true,
			}, 403, nil
		}
	}

	// No user message means there is nothing to validate; the request is
	// forwarded as-is.
	lastUser := lastUserMessage(req.Messages)
	if lastUser == "" {
		return nil, 200, nil
	}

	result := s.validator.Validate(lastUser)
	if result.Allowed {
		return nil, 200, nil
	}

	// Anonymous users get the rejection but are never tracked.
	if req.UserID == nil {
		return &dtos.ChatRejection{
			Error:   constants.MsgPolicyRejection,
			Flagged: true,
		}, 400, nil
	}

	escalated, err := s.moderationService.RecordFlag(ctx, *req.UserID, lastUser, result.Reason)
	if err != nil {
		log.Printf("failed to record flag for user %s: %v", *req.UserID, err)
	}
	if escalated {
		return &dtos.ChatRejection{
			Error:   constants.MsgEscalatedBlock,
			Blocked: true,
		}, 403, nil
	}
	return &dtos.ChatRejection{
		Error:   constants.MsgPolicyRejection,
		Flagged: true,
	}, 400, nil
}

func (s *ChatService) OpenStream(ctx context.Context, req *dtos.ChatRequest) (llm.Stream, uint, error) {
	systemPrompt, err := s.buildSystemPrompt(req)
	if err != nil {
		return nil, 500, err
	}

	client, err := s.llmManager.GetClient(config.Env.DefaultLLMClient)
	if err != nil {
		return nil, 500, err
	}

	messages := make([]llm.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	stream, err := client.StreamCompletion(ctx, systemPrompt, messages)
	if err != nil {
		return nil, mapUpstreamStatus(err), err
	}
	return stream, 200, nil
}

func (s *ChatService) buildSystemPrompt(req *dtos.ChatRequest) (string, error) {
	if req.IsGlobalMode || req.AnimalID == nil {
		return s.promptBuilder.BuildGlobalPrompt()
	}
	return s.promptBuilder.BuildAnimalPrompt(*req.AnimalID)
}

// mapUpstreamStatus translates typed completion-API failures onto the status
// codes the app exposes. No retries; the client decides what to do.
func mapUpstreamStatus(err error) uint {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return 429
	case errors.Is(err, llm.ErrQuotaExhausted):
		return 402
	default:
		return 500
	}
}

// UpstreamErrorMessage picks the Swedish user-facing text for a failed
// upstream call.
func UpstreamErrorMessage(statusCode uint) string {
	switch statusCode {
	case 429:
		return constants.MsgRateLimited
	case 402:
		return constants.MsgQuotaExhausted
	default:
		return constants.MsgUpstreamFailure
	}
}

func lastUserMessage(messages []dtos.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if strings.EqualFold(messages[i].Role, "user") {
			return messages[i].Content
		}
	}
	return ""
}
