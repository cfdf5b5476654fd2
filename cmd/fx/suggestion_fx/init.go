package suggestion_fx

import (
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"

	"wayfare/internal/services"
)

var Module = fx.Provide(provideChatClient, provideSuggestionService)

func provideChatClient() services.ChatClient {
	return openai.NewClient(os.Getenv("OPENAI_API_KEY"))
}

func provideSuggestionService(client services.ChatClient) services.SuggestionServiceInterface {
	return services.NewSuggestionService(client)
}
