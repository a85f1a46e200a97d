package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleProvider Role = "provider"
	RoleClient   Role = "client"
)

// Account is either a provider (lists signing services) or a client
// (purchases them). Both sides have the same credential shape.
type Account struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique handle, immutable after registration
	Username string `bun:",unique,notnull"`

	Role Role `bun:",notnull"`

	// bcrypt hash, never the credential itself
	CredentialHash string `bun:",notnull"`

	// Optional TOTP secret, empty until 2FA is enabled
	TwoFactorSecret string `bun:",nullzero"`

	// bcrypt hash of the recovery key, empty until one is issued
	RecoveryKeyHash string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
