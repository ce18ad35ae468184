package config

import (
	"fmt"
	"os"
	"strconv"

	"djurdata-ai/internal/constants"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker          bool
	Port              string
	Environment       string
	CorsAllowedOrigin string

	// Auth configs
	JWTSecret                        string
	JWTExpirationMilliseconds        int
	JWTRefreshExpirationMilliseconds int
	AdminUser                        string
	AdminPassword                    string

	// Database configs
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDatabase string
	PostgresSSLMode  string

	// Redis configs
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Moderation configs
	ModerationBlockThreshold int

	// LLM configs
	DefaultLLMClient string

	// OpenAI-compatible gateway configs
	OpenAIAPIKey              string
	OpenAIModel               string
	OpenAIBaseURL             string
	OpenAIMaxCompletionTokens int
	OpenAITemperature         float64

	// Gemini configs
	GeminiAPIKey              string
	GeminiModel               string
	GeminiMaxCompletionTokens int
	GeminiTemperature         float64
}

var Env Environment

// LoadEnv loads environment variables from .env file if present
// and validates required variables
func LoadEnv() error {
	Env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !Env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	Env.Port = getEnvWithDefault("PORT", "3000")
	Env.Environment = getEnvWithDefault("ENVIRONMENT", "DEVELOPMENT")
	Env.CorsAllowedOrigin = getEnvWithDefault("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	// Auth configs
	Env.JWTSecret = getEnvWithDefault("JWT_SECRET", "djurdata_jwt_secret")
	Env.JWTExpirationMilliseconds = getIntEnvWithDefault("JWT_EXPIRATION_MILLISECONDS", 1000*60*60*24*10)                 // 10 days default
	Env.JWTRefreshExpirationMilliseconds = getIntEnvWithDefault("JWT_REFRESH_EXPIRATION_MILLISECONDS", 1000*60*60*24*30) // 30 days default
	Env.AdminUser = getEnvWithDefault("DJURDATA_ADMIN_USERNAME", "admin")
	Env.AdminPassword = getEnvWithDefault("DJURDATA_ADMIN_PASSWORD", "admin")

	// Database configs
	Env.PostgresHost = getEnvWithDefault("DJURDATA_POSTGRES_HOST", "localhost")
	Env.PostgresPort = getEnvWithDefault("DJURDATA_POSTGRES_PORT", "5432")
	Env.PostgresUser = getEnvWithDefault("DJURDATA_POSTGRES_USER", "djurdata")
	Env.PostgresPassword = getEnvWithDefault("DJURDATA_POSTGRES_PASSWORD", "djurdata")
	Env.PostgresDatabase = getEnvWithDefault("DJURDATA_POSTGRES_DB", "djurdata")
	Env.PostgresSSLMode = getEnvWithDefault("DJURDATA_POSTGRES_SSLMODE", "disable")

	// Redis configs
	Env.RedisHost = getEnvWithDefault("DJURDATA_REDIS_HOST", "localhost")
	Env.RedisPort = getEnvWithDefault("DJURDATA_REDIS_PORT", "6379")
	Env.RedisPassword = getEnvWithDefault("DJURDATA_REDIS_PASSWORD", "")

	// Moderation configs
	Env.ModerationBlockThreshold = getIntEnvWithDefault("MODERATION_BLOCK_THRESHOLD", constants.ModerationBlockThreshold)

	// LLM configs
	Env.DefaultLLMClient = getEnvWithDefault("DEFAULT_LLM_CLIENT", constants.OpenAI)

	// OpenAI-compatible gateway configs
	Env.OpenAIAPIKey = getEnvWithDefault("OPENAI_API_KEY", "")
	Env.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", constants.OpenAIModel)
	Env.OpenAIBaseURL = getEnvWithDefault("OPENAI_BASE_URL", constants.OpenAIBaseURL)
	Env.OpenAIMaxCompletionTokens = getIntEnvWithDefault("OPENAI_MAX_COMPLETION_TOKENS", constants.OpenAIMaxCompletionTokens)
	Env.OpenAITemperature = getFloatEnvWithDefault("OPENAI_TEMPERATURE", constants.OpenAITemperature)

	// Gemini configs
	Env.GeminiAPIKey = getEnvWithDefault("GEMINI_API_KEY", "")
	Env.GeminiModel = getEnvWithDefault("GEMINI_MODEL", constants.GeminiModel)
	Env.GeminiMaxCompletionTokens = getIntEnvWithDefault("GEMINI_MAX_COMPLETION_TOKENS", constants.GeminiMaxCompletionTokens)
	Env.GeminiTemperature = getFloatEnvWithDefault("GEMINI_TEMPERATURE", constants.GeminiTemperature)

	return validateConfig()
}

// PostgresDSN builds the gorm connection string from the individual parts.
func PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		Env.PostgresHost, Env.PostgresPort, Env.PostgresUser,
		Env.PostgresPassword, Env.PostgresDatabase, Env.PostgresSSLMode)
}

// Helper functions to get environment variables with defaults and validation
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func getFloatEnvWithDefault(key string, defaultValue float64) float64 {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %f\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func validateConfig() error {
	if Env.JWTExpirationMilliseconds <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_MILLISECONDS must be positive, got: %d", Env.JWTExpirationMilliseconds)
	}

	if Env.ModerationBlockThreshold <= 0 {
		return fmt.Errorf("MODERATION_BLOCK_THRESHOLD must be positive, got: %d", Env.ModerationBlockThreshold)
	}

	if Env.Environment != "DEVELOPMENT" && Env.AdminPassword == "admin" {
		return fmt.Errorf("default admin password must not be used outside development")
	}

	return nil
}
