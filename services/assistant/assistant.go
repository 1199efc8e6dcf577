package assistant

import (
	"context"
	"strings"

	"eventra/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const systemPrompt = "You are Eventra's wedding planning assistant for couples " +
	"organising weddings in India. Answer briefly and practically. When the " +
	"question concerns finding or comparing vendors, remind the user they can " +
	"browse photographers, venues, makeup artists, decorators and caterers on " +
	"Eventra and message them directly."

// AssistantService answers wedding planning questions.
type AssistantService interface {
	Ask(ctx context.Context, message string) (string, error)
}

// DefaultAssistantService wraps a Gemini model. Without an API key, or when
// the model call fails, it falls back to canned planning answers so the
// endpoint keeps working.
type DefaultAssistantService struct {
	model *genai.GenerativeModel
}

// NewAssistantService builds the service. An empty API key yields a
// canned-answers-only instance.
func NewAssistantService(apiKey string) *DefaultAssistantService {
	if apiKey == "" {
		utils.GetLogger().Warn("no Gemini API key configured, assistant will use canned answers")
		return &DefaultAssistantService{}
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		utils.GetLogger().Error("failed to create Gemini client, assistant will use canned answers", zap.Error(err))
		return &DefaultAssistantService{}
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	return &DefaultAssistantService{model: model}
}

// Ask answers one planning question.
func (s *DefaultAssistantService) Ask(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ValidationError("message is required")
	}

	if s.model == nil {
		return cannedAnswer(message), nil
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		utils.GetLogger().Warn("gemini generate failed, serving canned answer", zap.Error(err))
		return cannedAnswer(message), nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return cannedAnswer(message), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	answer := sb.String()
	if answer == "" {
		return cannedAnswer(message), nil
	}
	return answer, nil
}
