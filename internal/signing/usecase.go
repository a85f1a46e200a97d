package signing

import (
	"context"

	"github.com/google/uuid"
)

type SignatureRequestUsecase interface {
	// Create opens a signature request; requires an active purchase for the
	// (client, service) pair and generates a fee invoice when the service
	// charges per signature
	Create(ctx context.Context, cmd CreateCommand) (*RequestDTO, error)

	// CheckEligibility re-evaluates both release gates and flips
	// created->eligible when cooldown elapsed and fee (if any) settled
	CheckEligibility(ctx context.Context, id uuid.UUID) (*EligibilityDTO, error)

	// Sign attaches the provider's signed payload; only an eligible request
	// may be signed
	Sign(ctx context.Context, id uuid.UUID, signedPsbt string) (*RequestDTO, error)

	// Finalize is terminal and hands the signed payload to the delivery
	// sink exactly once
	Finalize(ctx context.Context, id uuid.UUID) (*RequestDTO, error)

	// Reject declines a not-yet-signed request; provider action, terminal
	Reject(ctx context.Context, id uuid.UUID) (*RequestDTO, error)

	GetRequest(ctx context.Context, id uuid.UUID) (*RequestDTO, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]RequestDTO, error)

	// ExpireStale sweeps requests past their TTL; called by an external
	// scheduler, never by the coordinator's own clock tick
	ExpireStale(ctx context.Context) (int64, error)
}
