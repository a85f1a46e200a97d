package purchase

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type InitiateCommand struct {
	ClientID  uuid.UUID
	ServiceID uuid.UUID
}

// Output DTOs
type PurchaseDTO struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	ServiceID  uuid.UUID
	PaymentRef string
	Active     bool
	CreatedAt  time.Time
}

// ActivationStatus is a stable polling outcome, never an exception.
type ActivationStatus string

const (
	ActivationActivated     ActivationStatus = "activated"
	ActivationAlreadyActive ActivationStatus = "already_active"
	ActivationPending       ActivationStatus = "pending"
)

const ReasonNotYetPaid = "not_yet_paid"

type ActivationDTO struct {
	Status ActivationStatus
	Reason string

	// Plaintext xpub, present only on the single winning activation
	Xpub string
}
