package api

import (
	"github.com/google/uuid"

	models "keymarket/internal/identity/model"
)

// Request bodies, everything coming from the outside world

type RegisterRequest struct {
	Username   string      `json:"username"`
	Credential string      `json:"credential"`
	Role       models.Role `json:"role"`
}

type LoginRequest struct {
	Username   string `json:"username"`
	Credential string `json:"credential"`
}

type PublishServiceRequest struct {
	ProviderID        uuid.UUID `json:"provider_id"`
	PolicyType        string    `json:"policy_type"`
	MasterFingerprint string    `json:"master_fingerprint"`
	DerivationPath    string    `json:"derivation_path"`

	// Plaintext xpub; sealed before anything touches the database
	Xpub string `json:"xpub"`

	ActivationFeeSats   int64  `json:"activation_fee_sats"`
	PerSignatureFeeSats int64  `json:"per_signature_fee_sats"`
	LightningEndpoint   string `json:"lightning_endpoint"`
}

type UpdateTermsRequest struct {
	ProviderID          uuid.UUID `json:"provider_id"`
	PolicyType          string    `json:"policy_type"`
	ActivationFeeSats   int64     `json:"activation_fee_sats"`
	PerSignatureFeeSats int64     `json:"per_signature_fee_sats"`
	LightningEndpoint   string    `json:"lightning_endpoint"`
}

type InitiatePurchaseRequest struct {
	ClientID  uuid.UUID `json:"client_id"`
	ServiceID uuid.UUID `json:"service_id"`
}

type CreateSignatureRequest struct {
	ClientID  uuid.UUID `json:"client_id"`
	ServiceID uuid.UUID `json:"service_id"`
	PsbtData  string    `json:"psbt_data"`
}

type SignRequest struct {
	SignedPsbt string `json:"signed_psbt"`
}
