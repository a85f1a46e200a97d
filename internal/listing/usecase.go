package listing

import (
	"context"

	"github.com/google/uuid"
)

type ServiceUsecase interface {
	// Publish lists a new signing offer: fingerprints the xpub, rejects a
	// duplicate key for the same provider, seals the xpub at rest
	Publish(ctx context.Context, cmd PublishCommand) (*ServiceDTO, error)

	GetService(ctx context.Context, id uuid.UUID) (*ServiceDTO, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]ServiceDTO, error)

	// UpdateTerms changes policy/fee fields; key material is immutable
	UpdateTerms(ctx context.Context, cmd UpdateTermsCommand) (*ServiceDTO, error)

	// Unlist removes a service unless active purchases still reference it
	Unlist(ctx context.Context, serviceID, providerID uuid.UUID) error
}

// KeyGuard is the slice of the privacy layer the listing side needs.
type KeyGuard interface {
	Fingerprint(rawKey string) (string, error)
	EncryptAtRest(rawKey string) ([]byte, error)
}

// PurchaseChecker reports whether a service is still referenced by an
// active purchase. Implemented by the purchase repository.
type PurchaseChecker interface {
	ActivePurchaseExistsForService(ctx context.Context, serviceID uuid.UUID) (bool, error)
}
