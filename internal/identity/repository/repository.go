package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "keymarket/internal/identity/model"
	"keymarket/pkg/logger"
)

type AccountRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrAccountNotFound = errors.New("account not found")

func NewAccountRepository(db *bun.DB, logger logger.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *AccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {

	_, err := r.db.NewInsert().Model(account).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "identityRepo.CreateAccount.Insert: ")
	}
	return nil
}

func (r *AccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {

	account := new(models.Account)
	err := r.db.NewSelect().Model(account).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, errors.Wrap(err, "identityRepo.GetAccountByID.Scan: ")
	}
	return account, nil
}

func (r *AccountRepository) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {

	account := new(models.Account)
	err := r.db.NewSelect().Model(account).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, errors.Wrap(err, "identityRepo.GetAccountByUsername.Scan: ")
	}
	return account, nil
}

func (r *AccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Account)(nil)).
		Where("username = ?", username).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "identityRepo.UsernameExists.Exists: ")
	}
	return exists, nil
}

func (r *AccountRepository) UpdateTwoFactorSecret(ctx context.Context, accountID uuid.UUID, secret string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Account)(nil)).
		Set("two_factor_secret = ?", secret).
		Set("updated_at = current_timestamp").
		Where("id = ?", accountID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "identityRepo.UpdateTwoFactorSecret.Update: ")
	}
	return nil
}

func (r *AccountRepository) UpdateRecoveryKeyHash(ctx context.Context, accountID uuid.UUID, hash string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Account)(nil)).
		Set("recovery_key_hash = ?", hash).
		Set("updated_at = current_timestamp").
		Where("id = ?", accountID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "identityRepo.UpdateRecoveryKeyHash.Update: ")
	}
	return nil
}
