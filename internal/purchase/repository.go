package purchase

import (
	"context"
	"time"

	"github.com/google/uuid"

	listingmodels "keymarket/internal/listing/model"
	models "keymarket/internal/purchase/model"
)

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *models.Purchase) error
	GetByPaymentRef(ctx context.Context, paymentRef string) (*models.Purchase, error)
	PairExists(ctx context.Context, clientID, serviceID uuid.UUID) (bool, error)

	// Activate flips the pending flag for the given payment reference.
	// Returns true only for the single caller whose update observed the
	// pre-flip state; concurrent callers get false.
	Activate(ctx context.Context, paymentRef string) (bool, error)

	GetActivePurchase(ctx context.Context, clientID, serviceID uuid.UUID) (*models.Purchase, error)
	ActivePurchaseExistsForService(ctx context.Context, serviceID uuid.UUID) (bool, error)

	// DeleteStalePending reaps never-activated purchases created before
	// the cutoff. Driven by the retention sweep, never by activation.
	DeleteStalePending(ctx context.Context, cutoff time.Time) (int64, error)
}

// ServiceCatalog is the slice of the listing domain the activation engine
// reads: fee terms, ciphertext, and the purchased flag.
type ServiceCatalog interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*listingmodels.Service, error)
	MarkPurchased(ctx context.Context, id uuid.UUID) error
}

// KeyRevealer opens sealed key material after activation wins.
type KeyRevealer interface {
	Reveal(ciphertext []byte) (string, error)
}
