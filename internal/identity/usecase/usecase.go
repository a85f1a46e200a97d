package usecase

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"keymarket/internal/identity"
	models "keymarket/internal/identity/model"
	"keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

type AccountUsecase struct {
	repo   identity.AccountRepository
	logger logger.Logger
}

func NewAccountUsecase(repo identity.AccountRepository, logger logger.Logger) *AccountUsecase {
	return &AccountUsecase{repo: repo, logger: logger}
}

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

func (uc *AccountUsecase) Register(ctx context.Context, cmd identity.RegisterCommand) (*identity.AccountDTO, error) {
	if !usernameRegex.MatchString(cmd.Username) {
		return nil, errors.ErrInvalidUsername
	}
	if cmd.Credential == "" {
		return nil, errors.ErrInvalidCredential
	}
	if cmd.Role != models.RoleProvider && cmd.Role != models.RoleClient {
		return nil, errors.InvalidArg("role must be provider or client")
	}

	if exists, err := uc.repo.UsernameExists(ctx, cmd.Username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Credential), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("failed to hash credential", "err", err)
		return nil, errors.Internal("internal server error")
	}

	account := &models.Account{
		Username:       cmd.Username,
		Role:           cmd.Role,
		CredentialHash: string(hash),
	}
	if err := uc.repo.CreateAccount(ctx, account); err != nil {
		uc.logger.Errorf("error while saving account in db: %v", err)
		return nil, errors.Internal("database error")
	}

	return toDTO(account), nil
}

func (uc *AccountUsecase) Authenticate(ctx context.Context, username, credential string) (*identity.AccountDTO, error) {
	account, err := uc.repo.GetAccountByUsername(ctx, username)
	if err != nil || account == nil {
		return nil, errors.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.CredentialHash), []byte(credential)); err != nil {
		return nil, errors.ErrBadCredentials
	}

	return toDTO(account), nil
}

func (uc *AccountUsecase) GetAccount(ctx context.Context, id uuid.UUID) (*identity.AccountDTO, error) {
	account, err := uc.repo.GetAccountByID(ctx, id)
	if err != nil || account == nil {
		return nil, errors.ErrAccountNotFound
	}
	return toDTO(account), nil
}

func (uc *AccountUsecase) GetAccountByUsername(ctx context.Context, username string) (*identity.AccountDTO, error) {
	account, err := uc.repo.GetAccountByUsername(ctx, username)
	if err != nil || account == nil {
		return nil, errors.ErrAccountNotFound
	}
	return toDTO(account), nil
}

func (uc *AccountUsecase) SetTwoFactorSecret(ctx context.Context, cmd identity.SetTwoFactorCommand) error {
	if cmd.Secret == "" {
		return errors.InvalidArg("two-factor secret cannot be empty")
	}
	if err := uc.repo.UpdateTwoFactorSecret(ctx, cmd.AccountID, cmd.Secret); err != nil {
		uc.logger.Error("failed to update two-factor secret", "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func (uc *AccountUsecase) SetRecoveryKey(ctx context.Context, cmd identity.SetRecoveryKeyCommand) error {
	if cmd.RecoveryKey == "" {
		return errors.InvalidArg("recovery key cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.RecoveryKey), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("internal server error")
	}
	if err := uc.repo.UpdateRecoveryKeyHash(ctx, cmd.AccountID, string(hash)); err != nil {
		uc.logger.Error("failed to update recovery key", "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func toDTO(a *models.Account) *identity.AccountDTO {
	return &identity.AccountDTO{
		ID:       a.ID,
		Username: a.Username,
		Role:     a.Role,
	}
}
