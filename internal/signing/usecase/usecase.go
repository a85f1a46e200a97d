package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"keymarket/internal/lightning"
	"keymarket/internal/notify"
	"keymarket/internal/signing"
	models "keymarket/internal/signing/model"
	"keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

type SignatureRequestUsecase struct {
	repo      signing.SignatureRequestRepository
	purchases signing.ActivePurchases
	catalog   signing.ServiceCatalog
	backend   lightning.Backend
	verifier  lightning.Verifier
	sink      notify.Sink
	cooldown  time.Duration
	ttl       time.Duration
	logger    logger.Logger

	// Swappable for deterministic eligibility tests
	now func() time.Time
}

func NewSignatureRequestUsecase(
	repo signing.SignatureRequestRepository,
	purchases signing.ActivePurchases,
	catalog signing.ServiceCatalog,
	backend lightning.Backend,
	verifier lightning.Verifier,
	sink notify.Sink,
	cooldown time.Duration,
	ttl time.Duration,
	logger logger.Logger,
) *SignatureRequestUsecase {
	return &SignatureRequestUsecase{
		repo:      repo,
		purchases: purchases,
		catalog:   catalog,
		backend:   backend,
		verifier:  verifier,
		sink:      sink,
		cooldown:  cooldown,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *SignatureRequestUsecase) Create(ctx context.Context, cmd signing.CreateCommand) (*signing.RequestDTO, error) {
	if cmd.PsbtData == "" {
		return nil, errors.ErrInvalidPayload
	}

	// Rejected here, not at signing time: a request may only ever exist
	// under an active purchase.
	if _, err := uc.purchases.GetActivePurchase(ctx, cmd.ClientID, cmd.ServiceID); err != nil {
		return nil, errors.ErrNoActivePurchase
	}

	service, err := uc.catalog.GetServiceByID(ctx, cmd.ServiceID)
	if err != nil || service == nil {
		return nil, errors.ErrServiceNotFound
	}

	req := &models.SignatureRequest{
		ClientID:  cmd.ClientID,
		ServiceID: cmd.ServiceID,
		PsbtData:  cmd.PsbtData,
		Status:    models.StatusCreated,
		UnlocksAt: uc.now().Add(uc.cooldown),
		ExpiresAt: uc.now().Add(uc.ttl),
	}

	if service.PerSignatureFeeSats > 0 {
		memo := fmt.Sprintf("keymarket signature %s", service.ID)
		feeRef, err := uc.backend.CreateInvoice(ctx, uint64(service.PerSignatureFeeSats), memo)
		if err != nil {
			uc.logger.Error("fee invoice creation failed", "service_id", service.ID, "err", err)
			return nil, err
		}
		req.FeePaymentRef = feeRef
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		uc.logger.Errorf("error while saving signature request in db: %v", err)
		return nil, errors.Internal("internal server error")
	}

	return toDTO(req), nil
}

// CheckEligibility evaluates both release gates against current state.
// Cooldown and fee settlement are re-checked on every poll until the guarded
// flip to eligible lands; nothing is remembered between polls.
func (uc *SignatureRequestUsecase) CheckEligibility(ctx context.Context, id uuid.UUID) (*signing.EligibilityDTO, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil || req == nil {
		return nil, errors.ErrRequestNotFound
	}

	switch req.Status {
	case models.StatusEligible:
		return &signing.EligibilityDTO{Status: models.StatusEligible, Eligible: true}, nil
	case models.StatusCreated:
		// fall through to evaluation
	default:
		return &signing.EligibilityDTO{Status: req.Status}, nil
	}

	if uc.now().Before(req.UnlocksAt) {
		return &signing.EligibilityDTO{Status: models.StatusCreated, Reason: signing.ReasonCooldownNotElapsed}, nil
	}

	if req.FeePaymentRef != "" {
		status, err := uc.verifier.Verify(ctx, req.FeePaymentRef)
		if err != nil {
			if errors.CodeOf(err) == errors.CodeUnavailable {
				// Not a negative verification; the next poll re-checks.
				uc.logger.Warn("fee settlement check unavailable", "request_id", req.ID, "err", err)
				return &signing.EligibilityDTO{Status: models.StatusCreated, Reason: signing.ReasonFeeNotPaid}, nil
			}
			return nil, err
		}
		if status != lightning.StatusSettled {
			return &signing.EligibilityDTO{Status: models.StatusCreated, Reason: signing.ReasonFeeNotPaid}, nil
		}
	}

	won, err := uc.repo.UpdateStatus(ctx, req.ID, models.StatusCreated, models.StatusEligible)
	if err != nil {
		uc.logger.Error("eligibility flip failed", "request_id", req.ID, "err", err)
		return nil, errors.Internal("database error")
	}
	if !won {
		// Lost the race to a concurrent poll or a terminal transition;
		// report whatever state won.
		current, err := uc.repo.GetByID(ctx, req.ID)
		if err != nil || current == nil {
			return nil, errors.ErrRequestNotFound
		}
		return &signing.EligibilityDTO{
			Status:   current.Status,
			Eligible: current.Status == models.StatusEligible,
		}, nil
	}

	return &signing.EligibilityDTO{Status: models.StatusEligible, Eligible: true}, nil
}

func (uc *SignatureRequestUsecase) Sign(ctx context.Context, id uuid.UUID, signedPsbt string) (*signing.RequestDTO, error) {
	if signedPsbt == "" {
		return nil, errors.ErrInvalidPayload
	}

	req, err := uc.repo.GetByID(ctx, id)
	if err != nil || req == nil {
		return nil, errors.ErrRequestNotFound
	}
	if req.Status != models.StatusEligible {
		return nil, errors.ErrNotEligible
	}

	won, err := uc.repo.SetSigned(ctx, id, signedPsbt)
	if err != nil {
		uc.logger.Error("signing transition failed", "request_id", id, "err", err)
		return nil, errors.Internal("database error")
	}
	if !won {
		return nil, errors.ErrNotEligible
	}

	req.Status = models.StatusSigned
	req.SignedPsbt = signedPsbt
	return toDTO(req), nil
}

func (uc *SignatureRequestUsecase) Finalize(ctx context.Context, id uuid.UUID) (*signing.RequestDTO, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil || req == nil {
		return nil, errors.ErrRequestNotFound
	}
	if req.Status != models.StatusSigned {
		return nil, errors.ErrNotEligible
	}

	won, err := uc.repo.UpdateStatus(ctx, id, models.StatusSigned, models.StatusFinalized)
	if err != nil {
		uc.logger.Error("finalize transition failed", "request_id", id, "err", err)
		return nil, errors.Internal("database error")
	}
	if !won {
		return nil, errors.ErrNotEligible
	}

	// The guarded flip above makes this at-most-once per request.
	if err := uc.sink.SignatureFinalized(ctx, notify.SignatureFinalizedEvent{
		RequestID:  req.ID,
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		SignedPsbt: req.SignedPsbt,
	}); err != nil {
		uc.logger.Warn("finalization notification failed", "request_id", req.ID, "err", err)
	}

	req.Status = models.StatusFinalized
	return toDTO(req), nil
}

func (uc *SignatureRequestUsecase) Reject(ctx context.Context, id uuid.UUID) (*signing.RequestDTO, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil || req == nil {
		return nil, errors.ErrRequestNotFound
	}

	// Any pre-signed state may be rejected; each attempt is its own
	// guarded update.
	for _, from := range []models.Status{models.StatusCreated, models.StatusEligible} {
		won, err := uc.repo.UpdateStatus(ctx, id, from, models.StatusRejected)
		if err != nil {
			uc.logger.Error("reject transition failed", "request_id", id, "err", err)
			return nil, errors.Internal("database error")
		}
		if won {
			req.Status = models.StatusRejected
			return toDTO(req), nil
		}
	}
	return nil, errors.ErrNotEligible
}

func (uc *SignatureRequestUsecase) GetRequest(ctx context.Context, id uuid.UUID) (*signing.RequestDTO, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil || req == nil {
		return nil, errors.ErrRequestNotFound
	}
	return toDTO(req), nil
}

func (uc *SignatureRequestUsecase) ListByClient(ctx context.Context, clientID uuid.UUID) ([]signing.RequestDTO, error) {
	reqs, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		uc.logger.Error("listing signature requests failed", "client_id", clientID, "err", err)
		return nil, errors.Internal("database error")
	}

	dtos := make([]signing.RequestDTO, 0, len(reqs))
	for i := range reqs {
		dtos = append(dtos, *toDTO(&reqs[i]))
	}
	return dtos, nil
}

func (uc *SignatureRequestUsecase) ExpireStale(ctx context.Context) (int64, error) {
	expired, err := uc.repo.ExpireStale(ctx, uc.now())
	if err != nil {
		uc.logger.Error("expiry sweep failed", "err", err)
		return 0, errors.Internal("database error")
	}
	if expired > 0 {
		uc.logger.Info("expired stale signature requests", "count", expired)
	}
	return expired, nil
}

func toDTO(req *models.SignatureRequest) *signing.RequestDTO {
	return &signing.RequestDTO{
		ID:            req.ID,
		ClientID:      req.ClientID,
		ServiceID:     req.ServiceID,
		Status:        req.Status,
		SignedPsbt:    req.SignedPsbt,
		FeePaymentRef: req.FeePaymentRef,
		UnlocksAt:     req.UnlocksAt,
		ExpiresAt:     req.ExpiresAt,
		CreatedAt:     req.CreatedAt,
	}
}
