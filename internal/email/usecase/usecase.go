package usecase

import (
	"context"
	"fmt"

	"mailmate-backend/internal/email/dto"
)

// EmailUsecase drives one email-assistant turn: validate, resolve previous
// content, build the prompt, generate, persist.
type EmailUsecase interface {
	// HandleEmailAction processes one turn. userID may be "" for stateless
	// requests; a chat can only be tied to an authenticated request.
	HandleEmailAction(ctx context.Context, userID string, req *dto.EmailRequest) (*dto.EmailResult, error)
}

// ValidationError reports a user-correctable request problem, detected
// before any external call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PersistenceError reports a failed chat-store write during a turn.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s message: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
