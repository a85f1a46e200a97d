package identity

import (
	"context"

	"github.com/google/uuid"
)

type AccountUsecase interface {
	// Register a provider or client with a unique username
	Register(ctx context.Context, cmd RegisterCommand) (*AccountDTO, error)

	// Authenticate compares the supplied credential against the stored hash
	Authenticate(ctx context.Context, username, credential string) (*AccountDTO, error)

	GetAccount(ctx context.Context, id uuid.UUID) (*AccountDTO, error)
	GetAccountByUsername(ctx context.Context, username string) (*AccountDTO, error)

	SetTwoFactorSecret(ctx context.Context, cmd SetTwoFactorCommand) error
	SetRecoveryKey(ctx context.Context, cmd SetRecoveryKeyCommand) error
}
