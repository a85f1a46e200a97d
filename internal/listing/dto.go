package listing

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type PublishCommand struct {
	ProviderID        uuid.UUID
	PolicyType        string
	MasterFingerprint string
	DerivationPath    string

	// Plaintext xpub, encrypted before anything is persisted
	Xpub string

	ActivationFeeSats   int64
	PerSignatureFeeSats int64
	LightningEndpoint   string
}

type UpdateTermsCommand struct {
	ServiceID  uuid.UUID
	ProviderID uuid.UUID

	PolicyType          string
	ActivationFeeSats   int64
	PerSignatureFeeSats int64
	LightningEndpoint   string
}

// Output DTOs
type ServiceDTO struct {
	ID                  uuid.UUID
	ProviderID          uuid.UUID
	PolicyType          string
	MasterFingerprint   string
	DerivationPath      string
	XpubFingerprint     string
	ActivationFeeSats   int64
	PerSignatureFeeSats int64
	LightningEndpoint   string
	Purchased           bool
}
