package usecase

import (
	"context"
	"fmt"
	"time"

	"keymarket/internal/lightning"
	"keymarket/internal/notify"
	"keymarket/internal/purchase"
	models "keymarket/internal/purchase/model"
	"keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

type PurchaseUsecase struct {
	repo      purchase.PurchaseRepository
	catalog   purchase.ServiceCatalog
	backend   lightning.Backend
	verifier  lightning.Verifier
	revealer  purchase.KeyRevealer
	sink      notify.Sink
	retention time.Duration
	logger    logger.Logger
}

func NewPurchaseUsecase(
	repo purchase.PurchaseRepository,
	catalog purchase.ServiceCatalog,
	backend lightning.Backend,
	verifier lightning.Verifier,
	revealer purchase.KeyRevealer,
	sink notify.Sink,
	retention time.Duration,
	logger logger.Logger,
) *PurchaseUsecase {
	return &PurchaseUsecase{
		repo:      repo,
		catalog:   catalog,
		backend:   backend,
		verifier:  verifier,
		revealer:  revealer,
		sink:      sink,
		retention: retention,
		logger:    logger,
	}
}

func (uc *PurchaseUsecase) Initiate(ctx context.Context, cmd purchase.InitiateCommand) (*purchase.PurchaseDTO, error) {
	service, err := uc.catalog.GetServiceByID(ctx, cmd.ServiceID)
	if err != nil || service == nil {
		return nil, errors.ErrServiceNotFound
	}

	// One purchase per pair, pending or active.
	if exists, err := uc.repo.PairExists(ctx, cmd.ClientID, cmd.ServiceID); err != nil {
		uc.logger.Error("database error checking purchase pair", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrPurchaseExists
	}

	memo := fmt.Sprintf("keymarket activation %s", service.ID)
	paymentRef, err := uc.backend.CreateInvoice(ctx, uint64(service.ActivationFeeSats), memo)
	if err != nil {
		uc.logger.Error("invoice creation failed", "service_id", service.ID, "err", err)
		return nil, err
	}

	p := &models.Purchase{
		ClientID:   cmd.ClientID,
		ServiceID:  cmd.ServiceID,
		PaymentRef: paymentRef,
	}
	if err := uc.repo.CreatePurchase(ctx, p); err != nil {
		// The composite unique constraint backstops the race between the
		// pair check and the insert.
		uc.logger.Errorf("error while saving purchase in db: %v", err)
		return nil, errors.ErrPurchaseExists
	}

	return toDTO(p), nil
}

func (uc *PurchaseUsecase) Activate(ctx context.Context, paymentRef string) (*purchase.ActivationDTO, error) {
	if paymentRef == "" {
		return nil, errors.ErrInvalidPaymentRef
	}

	p, err := uc.repo.GetByPaymentRef(ctx, paymentRef)
	if err != nil || p == nil {
		return nil, errors.ErrPurchaseNotFound
	}
	if p.Active {
		return &purchase.ActivationDTO{Status: purchase.ActivationAlreadyActive}, nil
	}

	status, err := uc.verifier.Verify(ctx, paymentRef)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeUnavailable {
			// Transient backend trouble is not a negative verification;
			// the caller polls again later.
			uc.logger.Warn("settlement verification unavailable", "payment_ref", paymentRef, "err", err)
			return &purchase.ActivationDTO{Status: purchase.ActivationPending, Reason: purchase.ReasonNotYetPaid}, nil
		}
		return nil, err
	}
	if status != lightning.StatusSettled {
		return &purchase.ActivationDTO{Status: purchase.ActivationPending, Reason: purchase.ReasonNotYetPaid}, nil
	}

	// Exactly one caller wins the flip; webhook/poll racers land here
	// concurrently and all but one observe the post-flip state.
	won, err := uc.repo.Activate(ctx, paymentRef)
	if err != nil {
		uc.logger.Error("activation flip failed", "payment_ref", paymentRef, "err", err)
		return nil, errors.Internal("database error")
	}
	if !won {
		return &purchase.ActivationDTO{Status: purchase.ActivationAlreadyActive}, nil
	}

	service, err := uc.catalog.GetServiceByID(ctx, p.ServiceID)
	if err != nil || service == nil {
		uc.logger.Error("activated purchase references missing service", "purchase_id", p.ID)
		return nil, errors.Internal("service record missing")
	}

	xpub, err := uc.revealer.Reveal(service.XpubCiphertext)
	if err != nil {
		// Tampered or undecryptable ciphertext: surface loudly, never
		// retry, never hand out a guess.
		uc.logger.Error("key material reveal failed", "service_id", service.ID, "err", err)
		return nil, errors.ErrRevealFailed(err)
	}

	if err := uc.catalog.MarkPurchased(ctx, service.ID); err != nil {
		uc.logger.Warn("failed to mark service purchased", "service_id", service.ID, "err", err)
	}

	// Sink is fire-and-forget; the CAS win above makes this at-most-once.
	if err := uc.sink.PurchaseActivated(ctx, notify.PurchaseActivatedEvent{
		PurchaseID: p.ID,
		ClientID:   p.ClientID,
		ServiceID:  p.ServiceID,
		Xpub:       xpub,
	}); err != nil {
		uc.logger.Warn("activation notification failed", "purchase_id", p.ID, "err", err)
	}

	return &purchase.ActivationDTO{Status: purchase.ActivationActivated, Xpub: xpub}, nil
}

func (uc *PurchaseUsecase) SweepStalePending(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-uc.retention)
	reaped, err := uc.repo.DeleteStalePending(ctx, cutoff)
	if err != nil {
		uc.logger.Error("retention sweep failed", "err", err)
		return 0, errors.Internal("database error")
	}
	if reaped > 0 {
		uc.logger.Info("reaped stale pending purchases", "count", reaped)
	}
	return reaped, nil
}

func toDTO(p *models.Purchase) *purchase.PurchaseDTO {
	return &purchase.PurchaseDTO{
		ID:         p.ID,
		ClientID:   p.ClientID,
		ServiceID:  p.ServiceID,
		PaymentRef: p.PaymentRef,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
	}
}
