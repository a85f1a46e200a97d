package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "keymarket/internal/listing/model"
	"keymarket/pkg/logger"
)

type ServiceRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrServiceNotFound = errors.New("service not found")

func NewServiceRepository(db *bun.DB, logger logger.Logger) *ServiceRepository {
	return &ServiceRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ServiceRepository) CreateService(ctx context.Context, service *models.Service) error {

	_, err := r.db.NewInsert().Model(service).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "listingRepo.CreateService.Insert: ")
	}
	return nil
}

func (r *ServiceRepository) GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {

	service := new(models.Service)
	err := r.db.NewSelect().Model(service).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, errors.Wrap(err, "listingRepo.GetServiceByID.Scan: ")
	}
	return service, nil
}

func (r *ServiceRepository) ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]models.Service, error) {
	var services []models.Service
	err := r.db.NewSelect().
		Model(&services).
		Where("provider_id = ?", providerID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listingRepo.ListServicesByProvider.Scan: ")
	}
	return services, nil
}

func (r *ServiceRepository) FingerprintExists(ctx context.Context, providerID uuid.UUID, fingerprint string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Service)(nil)).
		Where("provider_id = ? AND xpub_fingerprint = ?", providerID, fingerprint).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "listingRepo.FingerprintExists.Exists: ")
	}
	return exists, nil
}

func (r *ServiceRepository) UpdateTerms(ctx context.Context, service *models.Service) error {
	// Explicit column list keeps the ciphertext and fingerprint immutable.
	_, err := r.db.NewUpdate().
		Model(service).
		Column("policy_type", "activation_fee_sats", "per_signature_fee_sats", "lightning_endpoint").
		Set("updated_at = current_timestamp").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "listingRepo.UpdateTerms.Update: ")
	}
	return nil
}

func (r *ServiceRepository) MarkPurchased(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model(&models.Service{Purchased: true}).
		Column("purchased").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "listingRepo.MarkPurchased.Update: ")
	}
	return nil
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*models.Service)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "listingRepo.DeleteService.Delete: ")
	}
	return nil
}
