package api

import (
	"log"

	"github.com/gin-gonic/gin"

	authUsecase "mailmate-backend/internal/auth/usecase"
	chatDelivery "mailmate-backend/internal/chat/delivery"
	chatUsecasePkg "mailmate-backend/internal/chat/usecase"
	emailDelivery "mailmate-backend/internal/email/delivery"
	emailUsecasePkg "mailmate-backend/internal/email/usecase"
	"mailmate-backend/pkg/ai"
	"mailmate-backend/pkg/config"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	chatHandler  *chatDelivery.ChatHandler
	emailHandler *emailDelivery.EmailHandler
	config       *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, chatUc chatUsecasePkg.ChatUsecase, cfg *config.Config) (*Handler, error) {
	// Initialize runtime config for the settings API
	InitRuntimeConfig(cfg.OllamaServiceIP, cfg.OllamaModel)

	// The generation backend reads the Ollama address through the runtime
	// getters so settings updates apply without a restart.
	generator, err := ai.NewGenerator(ai.Config{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
		ScriptCommand:    cfg.GenerationScript,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Generation backend initialized with provider: %s", cfg.AIProvider)

	emailUc := emailUsecasePkg.NewEmailUsecase(chatUc, generator)

	// The passthrough route always talks to Ollama directly, regardless of
	// the configured generation provider.
	forwarder := ai.NewOllamaServiceWithGetters(GetRuntimeOllamaBaseURL, GetRuntimeOllamaModel)

	return &Handler{
		authUsecase:  authUc,
		chatHandler:  chatDelivery.NewChatHandler(chatUc),
		emailHandler: emailDelivery.NewEmailHandler(emailUc, forwarder),
		config:       cfg,
	}, nil
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.chatHandler, h.emailHandler)

	return r.Run(addr)
}
