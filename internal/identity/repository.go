package identity

import (
	"context"

	"github.com/google/uuid"

	models "keymarket/internal/identity/model"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	UpdateTwoFactorSecret(ctx context.Context, accountID uuid.UUID, secret string) error
	UpdateRecoveryKeyHash(ctx context.Context, accountID uuid.UUID, hash string) error
}
