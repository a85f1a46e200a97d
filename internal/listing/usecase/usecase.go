package usecase

import (
	"context"

	"github.com/google/uuid"

	"keymarket/internal/listing"
	models "keymarket/internal/listing/model"
	"keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

type ServiceUsecase struct {
	repo      listing.ServiceRepository
	guard     listing.KeyGuard
	purchases listing.PurchaseChecker
	logger    logger.Logger
}

func NewServiceUsecase(repo listing.ServiceRepository, guard listing.KeyGuard, purchases listing.PurchaseChecker, logger logger.Logger) *ServiceUsecase {
	return &ServiceUsecase{repo: repo, guard: guard, purchases: purchases, logger: logger}
}

func (uc *ServiceUsecase) Publish(ctx context.Context, cmd listing.PublishCommand) (*listing.ServiceDTO, error) {
	if cmd.Xpub == "" {
		return nil, errors.ErrInvalidXpub
	}
	if cmd.PolicyType == "" {
		return nil, errors.InvalidArg("policy type is required")
	}
	if cmd.LightningEndpoint == "" {
		return nil, errors.InvalidArg("lightning endpoint is required")
	}
	if cmd.ActivationFeeSats < 0 || cmd.PerSignatureFeeSats < 0 {
		return nil, errors.InvalidArg("fees cannot be negative")
	}

	// Existence check runs on the keyed digest, never on the plaintext.
	fingerprint, err := uc.guard.Fingerprint(cmd.Xpub)
	if err != nil {
		uc.logger.Error("fingerprint computation failed", "err", err)
		return nil, err
	}

	if exists, err := uc.repo.FingerprintExists(ctx, cmd.ProviderID, fingerprint); err != nil {
		uc.logger.Error("database error checking fingerprint", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrDuplicateService
	}

	ciphertext, err := uc.guard.EncryptAtRest(cmd.Xpub)
	if err != nil {
		uc.logger.Error("failed to seal key material", "err", err)
		return nil, err
	}

	service := &models.Service{
		ProviderID:          cmd.ProviderID,
		PolicyType:          cmd.PolicyType,
		MasterFingerprint:   cmd.MasterFingerprint,
		DerivationPath:      cmd.DerivationPath,
		XpubFingerprint:     fingerprint,
		XpubCiphertext:      ciphertext,
		ActivationFeeSats:   cmd.ActivationFeeSats,
		PerSignatureFeeSats: cmd.PerSignatureFeeSats,
		LightningEndpoint:   cmd.LightningEndpoint,
	}
	if err := uc.repo.CreateService(ctx, service); err != nil {
		uc.logger.Errorf("error while saving service in db: %v", err)
		return nil, errors.Internal("database error")
	}

	return toDTO(service), nil
}

func (uc *ServiceUsecase) GetService(ctx context.Context, id uuid.UUID) (*listing.ServiceDTO, error) {
	service, err := uc.repo.GetServiceByID(ctx, id)
	if err != nil || service == nil {
		return nil, errors.ErrServiceNotFound
	}
	return toDTO(service), nil
}

func (uc *ServiceUsecase) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]listing.ServiceDTO, error) {
	services, err := uc.repo.ListServicesByProvider(ctx, providerID)
	if err != nil {
		uc.logger.Error("database error listing services", "err", err)
		return nil, errors.Internal("database error")
	}

	dtos := make([]listing.ServiceDTO, 0, len(services))
	for i := range services {
		dtos = append(dtos, *toDTO(&services[i]))
	}
	return dtos, nil
}

func (uc *ServiceUsecase) UpdateTerms(ctx context.Context, cmd listing.UpdateTermsCommand) (*listing.ServiceDTO, error) {
	service, err := uc.repo.GetServiceByID(ctx, cmd.ServiceID)
	if err != nil || service == nil {
		return nil, errors.ErrServiceNotFound
	}
	if service.ProviderID != cmd.ProviderID {
		return nil, errors.Forbidden("service belongs to another provider")
	}
	if cmd.ActivationFeeSats < 0 || cmd.PerSignatureFeeSats < 0 {
		return nil, errors.InvalidArg("fees cannot be negative")
	}

	if cmd.PolicyType != "" {
		service.PolicyType = cmd.PolicyType
	}
	if cmd.LightningEndpoint != "" {
		service.LightningEndpoint = cmd.LightningEndpoint
	}
	service.ActivationFeeSats = cmd.ActivationFeeSats
	service.PerSignatureFeeSats = cmd.PerSignatureFeeSats

	if err := uc.repo.UpdateTerms(ctx, service); err != nil {
		uc.logger.Error("failed to update service terms", "err", err)
		return nil, errors.Internal("database error")
	}
	return toDTO(service), nil
}

func (uc *ServiceUsecase) Unlist(ctx context.Context, serviceID, providerID uuid.UUID) error {
	service, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil || service == nil {
		return errors.ErrServiceNotFound
	}
	if service.ProviderID != providerID {
		return errors.Forbidden("service belongs to another provider")
	}

	active, err := uc.purchases.ActivePurchaseExistsForService(ctx, serviceID)
	if err != nil {
		uc.logger.Error("database error checking purchases", "err", err)
		return errors.Internal("database error")
	}
	if active {
		return errors.ErrServiceInUse
	}

	if err := uc.repo.DeleteService(ctx, serviceID); err != nil {
		uc.logger.Error("failed to delete service", "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func toDTO(s *models.Service) *listing.ServiceDTO {
	return &listing.ServiceDTO{
		ID:                  s.ID,
		ProviderID:          s.ProviderID,
		PolicyType:          s.PolicyType,
		MasterFingerprint:   s.MasterFingerprint,
		DerivationPath:      s.DerivationPath,
		XpubFingerprint:     s.XpubFingerprint,
		ActivationFeeSats:   s.ActivationFeeSats,
		PerSignatureFeeSats: s.PerSignatureFeeSats,
		LightningEndpoint:   s.LightningEndpoint,
		Purchased:           s.Purchased,
	}
}
