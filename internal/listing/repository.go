package listing

import (
	"context"

	"github.com/google/uuid"

	models "keymarket/internal/listing/model"
)

type ServiceRepository interface {
	CreateService(ctx context.Context, service *models.Service) error
	GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]models.Service, error)
	FingerprintExists(ctx context.Context, providerID uuid.UUID, fingerprint string) (bool, error)

	// UpdateTerms touches policy/fee/endpoint fields only; the ciphertext
	// column is never updated after creation
	UpdateTerms(ctx context.Context, service *models.Service) error

	MarkPurchased(ctx context.Context, id uuid.UUID) error
	DeleteService(ctx context.Context, id uuid.UUID) error
}
