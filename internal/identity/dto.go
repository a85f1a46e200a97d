package identity

import (
	"github.com/google/uuid"

	models "keymarket/internal/identity/model"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	Username   string
	Credential string
	Role       models.Role
}

type SetTwoFactorCommand struct {
	AccountID uuid.UUID
	Secret    string
}

type SetRecoveryKeyCommand struct {
	AccountID   uuid.UUID
	RecoveryKey string
}

// Output DTOs
type AccountDTO struct {
	ID       uuid.UUID
	Username string
	Role     models.Role
}
