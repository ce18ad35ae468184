package constants

const (
	OpenAI = "openai"
	Gemini = "gemini"
)

const (
	OpenAIModel               = "google/gemini-2.5-flash"
	OpenAIBaseURL             = "https://ai.gateway.lovable.dev/v1"
	OpenAIMaxCompletionTokens = 2048
	OpenAITemperature         = 0.7
)

const (
	GeminiModel               = "gemini-2.5-flash"
	GeminiMaxCompletionTokens = 2048
	GeminiTemperature         = 0.7
)
