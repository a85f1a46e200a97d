package signing

import (
	"context"
	"time"

	"github.com/google/uuid"

	listingmodels "keymarket/internal/listing/model"
	purchasemodels "keymarket/internal/purchase/model"
	models "keymarket/internal/signing/model"
)

type SignatureRequestRepository interface {
	CreateRequest(ctx context.Context, req *models.SignatureRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SignatureRequest, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.SignatureRequest, error)

	// UpdateStatus is the guarded transition: the update matches only rows
	// currently in the from status, so exactly one racing caller wins
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.Status) (bool, error)

	// SetSigned stores the signed payload and flips eligible->signed in one
	// guarded update
	SetSigned(ctx context.Context, id uuid.UUID, signedPsbt string) (bool, error)

	// ExpireStale transitions created/eligible requests past their expiry
	// to expired, returning how many rows moved
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

// ActivePurchases is the slice of the purchase domain the coordinator needs:
// proof that an active purchase links the pair.
type ActivePurchases interface {
	GetActivePurchase(ctx context.Context, clientID, serviceID uuid.UUID) (*purchasemodels.Purchase, error)
}

// ServiceCatalog exposes the per-signature fee terms of the listing.
type ServiceCatalog interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*listingmodels.Service, error)
}
