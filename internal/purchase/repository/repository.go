package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "keymarket/internal/purchase/model"
	"keymarket/pkg/logger"
)

type PurchaseRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrPurchaseNotFound = errors.New("purchase not found")

func NewPurchaseRepository(db *bun.DB, logger logger.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *PurchaseRepository) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {

	_, err := r.db.NewInsert().Model(purchase).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "purchaseRepo.CreatePurchase.Insert: ")
	}
	return nil
}

func (r *PurchaseRepository) GetByPaymentRef(ctx context.Context, paymentRef string) (*models.Purchase, error) {

	purchase := new(models.Purchase)
	err := r.db.NewSelect().Model(purchase).Where("payment_ref = ?", paymentRef).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, errors.Wrap(err, "purchaseRepo.GetByPaymentRef.Scan: ")
	}
	return purchase, nil
}

func (r *PurchaseRepository) PairExists(ctx context.Context, clientID, serviceID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Purchase)(nil)).
		Where("client_id = ? AND service_id = ?", clientID, serviceID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "purchaseRepo.PairExists.Exists: ")
	}
	return exists, nil
}

// Activate is the guarded pending->active flip. The WHERE clause carries
// the compare half of the compare-and-swap: of N concurrent callers on the
// same payment reference, exactly one update matches a row.
func (r *PurchaseRepository) Activate(ctx context.Context, paymentRef string) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*models.Purchase)(nil)).
		Set("active = TRUE").
		Set("activated_at = current_timestamp").
		Where("payment_ref = ? AND active = FALSE", paymentRef).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "purchaseRepo.Activate.Update: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "purchaseRepo.Activate.RowsAffected: ")
	}
	return affected == 1, nil
}

func (r *PurchaseRepository) GetActivePurchase(ctx context.Context, clientID, serviceID uuid.UUID) (*models.Purchase, error) {
	purchase := new(models.Purchase)
	err := r.db.NewSelect().
		Model(purchase).
		Where("client_id = ? AND service_id = ? AND active = TRUE", clientID, serviceID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, errors.Wrap(err, "purchaseRepo.GetActivePurchase.Scan: ")
	}
	return purchase, nil
}

func (r *PurchaseRepository) ActivePurchaseExistsForService(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Purchase)(nil)).
		Where("service_id = ? AND active = TRUE", serviceID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "purchaseRepo.ActivePurchaseExistsForService.Exists: ")
	}
	return exists, nil
}

func (r *PurchaseRepository) DeleteStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*models.Purchase)(nil)).
		Where("active = FALSE AND created_at < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "purchaseRepo.DeleteStalePending.Delete: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "purchaseRepo.DeleteStalePending.RowsAffected: ")
	}
	return affected, nil
}
