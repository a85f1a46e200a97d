package purchase

import (
	"context"
)

type PurchaseUsecase interface {
	// Initiate creates a pending purchase with a fresh invoice; at most
	// one purchase may link a (client, service) pair
	Initiate(ctx context.Context, cmd InitiateCommand) (*PurchaseDTO, error)

	// Activate verifies settlement for the payment reference and flips
	// the purchase exactly once, revealing the xpub to the winner
	Activate(ctx context.Context, paymentRef string) (*ActivationDTO, error)

	// SweepStalePending reaps purchases that never saw a payment; called
	// by an external scheduler
	SweepStalePending(ctx context.Context) (int64, error)
}
