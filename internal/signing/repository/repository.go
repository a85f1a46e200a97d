package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "keymarket/internal/signing/model"
	"keymarket/pkg/logger"
)

type SignatureRequestRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrRequestNotFound = errors.New("signature request not found")

func NewSignatureRequestRepository(db *bun.DB, logger logger.Logger) *SignatureRequestRepository {
	return &SignatureRequestRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *SignatureRequestRepository) CreateRequest(ctx context.Context, req *models.SignatureRequest) error {

	_, err := r.db.NewInsert().Model(req).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "signingRepo.CreateRequest.Insert: ")
	}
	return nil
}

func (r *SignatureRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SignatureRequest, error) {

	req := new(models.SignatureRequest)
	err := r.db.NewSelect().Model(req).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, errors.Wrap(err, "signingRepo.GetByID.Scan: ")
	}
	return req, nil
}

func (r *SignatureRequestRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.SignatureRequest, error) {
	var reqs []models.SignatureRequest
	err := r.db.NewSelect().
		Model(&reqs).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "signingRepo.ListByClient.Scan: ")
	}
	return reqs, nil
}

// UpdateStatus carries the compare half of the compare-and-swap in its WHERE
// clause; a lost race matches zero rows.
func (r *SignatureRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.Status) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*models.SignatureRequest)(nil)).
		Set("status = ?", to).
		Set("updated_at = current_timestamp").
		Where("id = ? AND status = ?", id, from).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "signingRepo.UpdateStatus.Update: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "signingRepo.UpdateStatus.RowsAffected: ")
	}
	return affected == 1, nil
}

func (r *SignatureRequestRepository) SetSigned(ctx context.Context, id uuid.UUID, signedPsbt string) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*models.SignatureRequest)(nil)).
		Set("signed_psbt = ?", signedPsbt).
		Set("status = ?", models.StatusSigned).
		Set("updated_at = current_timestamp").
		Where("id = ? AND status = ?", id, models.StatusEligible).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "signingRepo.SetSigned.Update: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "signingRepo.SetSigned.RowsAffected: ")
	}
	return affected == 1, nil
}

func (r *SignatureRequestRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.SignatureRequest)(nil)).
		Set("status = ?", models.StatusExpired).
		Set("updated_at = current_timestamp").
		Where("status IN (?, ?) AND expires_at < ?", models.StatusCreated, models.StatusEligible, now).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "signingRepo.ExpireStale.Update: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "signingRepo.ExpireStale.RowsAffected: ")
	}
	return affected, nil
}
