package main

import (
	"log"

	"mailmate-backend/cmd/api"
	authDomain "mailmate-backend/internal/auth/domain"
	authRepository "mailmate-backend/internal/auth/repository"
	authUsecase "mailmate-backend/internal/auth/usecase"
	chatDomain "mailmate-backend/internal/chat/domain"
	chatRepository "mailmate-backend/internal/chat/repository"
	chatUsecase "mailmate-backend/internal/chat/usecase"
	"mailmate-backend/pkg/config"
	"mailmate-backend/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&authDomain.User{},
		&authDomain.RefreshToken{},
		&chatDomain.Chat{},
		&chatDomain.Message{},
		&chatDomain.ActiveChat{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := authRepository.NewUserRepository(db)
	chatRepo := chatRepository.NewGormChatRepository(db)

	authUc := authUsecase.NewAuthUsecase(userRepo, cfg)
	chatUc := chatUsecase.NewChatUsecase(chatRepo)

	handler, err := api.NewHandler(authUc, chatUc, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize handler: %v", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
