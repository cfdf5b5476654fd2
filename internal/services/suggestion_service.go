package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"wayfare/internal/models/response_models"
	"wayfare/pkg/utils"
)

// ChatClient is the slice of the openai client the suggestion service uses.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type SuggestionServiceInterface interface {
	SuggestActivities(ctx context.Context, location string, days int) ([]response_models.SuggestedActivity, error)
}

type SuggestionService struct {
	client ChatClient
}

func NewSuggestionService(client ChatClient) SuggestionServiceInterface {
	return &SuggestionService{
		client: client,
	}
}

func (s *SuggestionService) SuggestActivities(ctx context.Context, location string, days int) ([]response_models.SuggestedActivity, error) {
	if strings.TrimSpace(location) == "" {
		return nil, utils.ErrInvalidInput
	}
	if days <= 0 {
		days = 3
	}

	prompt := fmt.Sprintf(
		`Suggest %d vacation activities for a trip to %s. Respond with ONLY a JSON array, no prose, where each element has the fields "name", "description", "duration_min" (integer minutes) and "cost" (number, estimated cost in USD).`,
		days*3, location)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedAIOutput, err)
	}
	if len(resp.Choices) == 0 {
		return nil, utils.ErrUnexpectedAIOutput
	}

	suggestions, err := parseSuggestions(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

// parseSuggestions tolerates prose around the JSON array: it unmarshals the
// outermost bracketed span of the answer.
func parseSuggestions(answer string) ([]response_models.SuggestedActivity, error) {
	start := strings.Index(answer, "[")
	end := strings.LastIndex(answer, "]")
	if start < 0 || end <= start {
		return nil, utils.ErrUnexpectedAIOutput
	}

	var suggestions []response_models.SuggestedActivity
	if err := json.Unmarshal([]byte(answer[start:end+1]), &suggestions); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedAIOutput, err)
	}

	out := suggestions[:0]
	for _, suggestion := range suggestions {
		if strings.TrimSpace(suggestion.Name) == "" {
			continue
		}
		if suggestion.DurationMin <= 0 {
			suggestion.DurationMin = 120
		}
		if suggestion.Cost < 0 {
			suggestion.Cost = 0
		}
		out = append(out, suggestion)
	}
	if len(out) == 0 {
		return nil, utils.ErrUnexpectedAIOutput
	}
	return out, nil
}
