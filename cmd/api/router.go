package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mailmate-backend/internal/auth/delivery"
	authUsecase "mailmate-backend/internal/auth/usecase"
	chatDelivery "mailmate-backend/internal/chat/delivery"
	emailDelivery "mailmate-backend/internal/email/delivery"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, chatHandler *chatDelivery.ChatHandler, emailHandler *emailDelivery.EmailHandler) {
	authHandler := delivery.NewAuthHandler(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Legacy raw passthrough to the generation backend. Registered for
		// every method so non-POST requests get a 405 with an Allow header.
		api.Any("/generate", emailHandler.Generate)

		// Email action endpoint; public, but a chat-bound request needs a
		// valid token for ownership checks and persistence.
		api.POST("/email", delivery.OptionalAuthMiddleware(authUc), emailHandler.HandleEmailAction)

		// Chat routes (protected)
		chats := api.Group("/chats")
		chats.Use(delivery.AuthMiddleware(authUc))
		{
			chats.GET("", chatHandler.ListChats)
			chats.POST("", chatHandler.CreateChat)
			chats.GET("/:id", chatHandler.GetChat)
			chats.PATCH("/:id", chatHandler.PatchChat)
			chats.DELETE("/:id", chatHandler.DeleteChat)
			chats.GET("/:id/messages", chatHandler.ListMessages)
			chats.POST("/:id/messages", chatHandler.AppendMessage)
		}

		// Settings routes (public) - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
