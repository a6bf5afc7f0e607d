package usecase

import (
	authdomain "mailmate-backend/internal/auth/domain"
	authdto "mailmate-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Login verifies credentials and issues an access/refresh token pair
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Register creates a new credential-based account
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// RefreshToken exchanges a valid stored refresh token for new tokens
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// Logout revokes a refresh token
	Logout(refreshToken string) error

	// ValidateToken verifies an access token and resolves its user
	ValidateToken(tokenString string) (*authdomain.User, error)
}
