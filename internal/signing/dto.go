package signing

import (
	"time"

	"github.com/google/uuid"

	models "keymarket/internal/signing/model"
)

// Reasons a request is still not eligible; both are re-evaluated on every
// poll, neither is cached.
const (
	ReasonCooldownNotElapsed = "cooldown_not_elapsed"
	ReasonFeeNotPaid         = "fee_not_paid"
)

type CreateCommand struct {
	ClientID  uuid.UUID `json:"client_id"`
	ServiceID uuid.UUID `json:"service_id"`
	PsbtData  string    `json:"psbt_data"`
}

type RequestDTO struct {
	ID            uuid.UUID     `json:"id"`
	ClientID      uuid.UUID     `json:"client_id"`
	ServiceID     uuid.UUID     `json:"service_id"`
	Status        models.Status `json:"status"`
	SignedPsbt    string        `json:"signed_psbt,omitempty"`
	FeePaymentRef string        `json:"fee_payment_ref,omitempty"`
	UnlocksAt     time.Time     `json:"unlocks_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
	CreatedAt     time.Time     `json:"created_at"`
}

type EligibilityDTO struct {
	Status   models.Status `json:"status"`
	Eligible bool          `json:"eligible"`
	// Set only while the request is still pending
	Reason string `json:"reason,omitempty"`
}
