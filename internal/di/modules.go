package di

import (
	"log"
	"time"

	"djurdata-ai/config"
	"djurdata-ai/internal/apis/handlers"
	"djurdata-ai/internal/constants"
	"djurdata-ai/internal/models"
	"djurdata-ai/internal/repositories"
	"djurdata-ai/internal/services"
	"djurdata-ai/internal/utils"
	"djurdata-ai/pkg/llm"
	"djurdata-ai/pkg/redis"

	"go.uber.org/dig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DiContainer *dig.Container

func Initialize() {
	DiContainer = dig.New()

	// Initialize Postgres
	db, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.FlaggedMessage{},
		&models.UserViolation{},
		&models.AdminAction{},
		&models.Animal{},
		&models.AnimalRequirement{},
		&models.AnimalFood{},
		&models.AnimalDisease{},
		&models.AnimalWarning{},
		&models.ChecklistTemplate{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.RedisClient(config.Env.RedisHost, config.Env.RedisPort, config.Env.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to initialize Redis client: %v", err)
	}

	redisRepo := redis.NewRedisRepositories(redisClient)
	jwtService := utils.NewJWTService(
		config.Env.JWTSecret,
		time.Millisecond*time.Duration(config.Env.JWTExpirationMilliseconds),
		time.Millisecond*time.Duration(config.Env.JWTRefreshExpirationMilliseconds),
	)

	// Provide all dependencies to the container
	if err := DiContainer.Provide(func() *gorm.DB { return db }); err != nil {
		log.Fatalf("Failed to provide database handle: %v", err)
	}

	if err := DiContainer.Provide(func() redis.IRedisRepositories { return redisRepo }); err != nil {
		log.Fatalf("Failed to provide Redis repositories: %v", err)
	}

	if err := DiContainer.Provide(func() utils.JWTService { return jwtService }); err != nil {
		log.Fatalf("Failed to provide JWT service: %v", err)
	}

	// Repositories
	if err := DiContainer.Provide(func(db *gorm.DB) repositories.UserRepository {
		return repositories.NewUserRepository(db)
	}); err != nil {
		log.Fatalf("Failed to provide user repository: %v", err)
	}

	if err := DiContainer.Provide(func(redisRepo redis.IRedisRepositories) repositories.TokenRepository {
		return repositories.NewTokenRepository(redisRepo)
	}); err != nil {
		log.Fatalf("Failed to provide token repository: %v", err)
	}

	if err := DiContainer.Provide(func(db *gorm.DB) repositories.ModerationRepository {
		return repositories.NewModerationRepository(db)
	}); err != nil {
		log.Fatalf("Failed to provide moderation repository: %v", err)
	}

	if err := DiContainer.Provide(func(db *gorm.DB) repositories.AnimalRepository {
		return repositories.NewAnimalRepository(db)
	}); err != nil {
		log.Fatalf("Failed to provide animal repository: %v", err)
	}

	// LLM Manager with the configured default client registered
	if err := DiContainer.Provide(func() *llm.Manager {
		manager := llm.NewManager()

		switch config.Env.DefaultLLMClient {
		case constants.OpenAI:
			err := manager.RegisterClient(constants.OpenAI, llm.Config{
				Provider:            constants.OpenAI,
				Model:               config.Env.OpenAIModel,
				APIKey:              config.Env.OpenAIAPIKey,
				BaseURL:             config.Env.OpenAIBaseURL,
				MaxCompletionTokens: config.Env.OpenAIMaxCompletionTokens,
				Temperature:         config.Env.OpenAITemperature,
			})
			if err != nil {
				log.Printf("Warning: Failed to register OpenAI client: %v", err)
			}
		case constants.Gemini:
			err := manager.RegisterClient(constants.Gemini, llm.Config{
				Provider:            constants.Gemini,
				Model:               config.Env.GeminiModel,
				APIKey:              config.Env.GeminiAPIKey,
				MaxCompletionTokens: config.Env.GeminiMaxCompletionTokens,
				Temperature:         config.Env.GeminiTemperature,
			})
			if err != nil {
				log.Printf("Warning: Failed to register Gemini client: %v", err)
			}
		}
		return manager
	}); err != nil {
		log.Fatalf("Failed to provide LLM manager: %v", err)
	}

	// Services
	if err := DiContainer.Provide(func(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, jwt utils.JWTService) services.AuthService {
		return services.NewAuthService(userRepo, jwt, tokenRepo)
	}); err != nil {
		log.Fatalf("Failed to provide auth service: %v", err)
	}

	if err := DiContainer.Provide(func(moderationRepo repositories.ModerationRepository, redisRepo redis.IRedisRepositories) services.IModerationService {
		return services.NewModerationService(moderationRepo, redisRepo, config.Env.ModerationBlockThreshold)
	}); err != nil {
		log.Fatalf("Failed to provide moderation service: %v", err)
	}

	if err := DiContainer.Provide(func(animalRepo repositories.AnimalRepository) services.IAnimalService {
		return services.NewAnimalService(animalRepo)
	}); err != nil {
		log.Fatalf("Failed to provide animal service: %v", err)
	}

	if err := DiContainer.Provide(func(
		moderationService services.IModerationService,
		animalRepo repositories.AnimalRepository,
		llmManager *llm.Manager,
	) services.IChatService {
		validator := services.NewMessageValidator(services.DefaultModerationPolicy())
		promptBuilder := services.NewPromptBuilder(animalRepo)
		return services.NewChatService(validator, moderationService, promptBuilder, llmManager)
	}); err != nil {
		log.Fatalf("Failed to provide chat service: %v", err)
	}

	// Handlers
	if err := DiContainer.Provide(func(authService services.AuthService) *handlers.AuthHandler {
		return handlers.NewAuthHandler(authService)
	}); err != nil {
		log.Fatalf("Failed to provide auth handler: %v", err)
	}

	if err := DiContainer.Provide(func(chatService services.IChatService) *handlers.ChatHandler {
		return handlers.NewChatHandler(chatService)
	}); err != nil {
		log.Fatalf("Failed to provide chat handler: %v", err)
	}

	if err := DiContainer.Provide(func(moderationService services.IModerationService) *handlers.AdminHandler {
		return handlers.NewAdminHandler(moderationService)
	}); err != nil {
		log.Fatalf("Failed to provide admin handler: %v", err)
	}

	if err := DiContainer.Provide(func(animalService services.IAnimalService) *handlers.AnimalHandler {
		return handlers.NewAnimalHandler(animalService)
	}); err != nil {
		log.Fatalf("Failed to provide animal handler: %v", err)
	}
}

// GetAuthHandler retrieves the AuthHandler from the DI container
func GetAuthHandler() (*handlers.AuthHandler, error) {
	var handler *handlers.AuthHandler
	err := DiContainer.Invoke(func(h *handlers.AuthHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}

// GetChatHandler retrieves the ChatHandler from the DI container
func GetChatHandler() (*handlers.ChatHandler, error) {
	var handler *handlers.ChatHandler
	err := DiContainer.Invoke(func(h *handlers.ChatHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}

// GetAdminHandler retrieves the AdminHandler from the DI container
func GetAdminHandler() (*handlers.AdminHandler, error) {
	var handler *handlers.AdminHandler
	err := DiContainer.Invoke(func(h *handlers.AdminHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}

// GetAnimalHandler retrieves the AnimalHandler from the DI container
func GetAnimalHandler() (*handlers.AnimalHandler, error) {
	var handler *handlers.AnimalHandler
	err := DiContainer.Invoke(func(h *handlers.AnimalHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}
