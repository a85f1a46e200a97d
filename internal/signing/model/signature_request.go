package models

import (
	"time"

	"github.com/google/uuid"

	identity "keymarket/internal/identity/model"
	listing "keymarket/internal/listing/model"
)

type Status string

const (
	StatusCreated   Status = "created"
	StatusEligible  Status = "eligible"
	StatusSigned    Status = "signed"
	StatusFinalized Status = "finalized"
	StatusExpired   Status = "expired"
	StatusRejected  Status = "rejected"
)

// Terminal reports whether no further transitions are accepted.
func (s Status) Terminal() bool {
	return s == StatusFinalized || s == StatusExpired || s == StatusRejected
}

// SignatureRequest tracks one co-signing round under an active purchase.
// Status moves created -> eligible -> signed -> finalized, with expired and
// rejected branches; every transition is a guarded update so racing callers
// serialize on the status column.
type SignatureRequest struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ClientID uuid.UUID         `bun:",notnull,type:uuid"`
	Client   *identity.Account `bun:"rel:belongs-to,join:client_id=id"`

	ServiceID uuid.UUID        `bun:",notnull,type:uuid"`
	Service   *listing.Service `bun:"rel:belongs-to,join:service_id=id"`

	// Unsigned transaction payload as submitted by the client
	PsbtData string `bun:",notnull"`

	// Filled by the provider at signing
	SignedPsbt string `bun:",nullzero"`

	// Empty when the service charges no per-signature fee
	FeePaymentRef string `bun:",nullzero"`

	Status Status `bun:",notnull,default:'created'"`

	// Provider must not release a signature before this instant
	UnlocksAt time.Time `bun:",notnull"`

	// Past this instant an unfinished request is fair game for the sweep
	ExpiresAt time.Time `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
