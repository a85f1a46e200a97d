package lightning

import (
	"context"

	"keymarket/config"
	"keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

// SettlementStatus is the outcome of a settlement lookup. Transport faults
// are returned as errors, never folded into a status: a caller must not
// treat "backend unreachable" as a negative verification.
type SettlementStatus string

const (
	StatusSettled  SettlementStatus = "SETTLED"
	StatusPending  SettlementStatus = "PENDING"
	StatusNotFound SettlementStatus = "NOT_FOUND"
)

// Backend is the narrow Lightning capability the core calls through. The
// engines never branch on which implementation is behind it.
type Backend interface {
	// CreateInvoice requests an invoice and returns the opaque payment
	// reference later used for settlement checks.
	CreateInvoice(ctx context.Context, amountSats uint64, memo string) (string, error)

	// CheckSettlement reports settlement status for a payment reference.
	// It is side-effect free: it never creates or mutates an invoice.
	CheckSettlement(ctx context.Context, paymentRef string) (SettlementStatus, error)
}

// Verifier is the settlement check as consumed by the engines, with the
// retry budget already applied.
type Verifier interface {
	Verify(ctx context.Context, paymentRef string) (SettlementStatus, error)
}

// FromConfig selects the backend once at construction time.
func FromConfig(cfg *config.Config, log logger.Logger) (Backend, error) {
	switch cfg.Lightning.Mode {
	case "mock":
		return NewMockBackend(), nil
	case "lnurl":
		return NewLNURLBackend(cfg.Lightning.InvoiceURL, cfg.Lightning.VerifyURL, cfg.Lightning.Timeout, log)
	default:
		return nil, errors.InvalidArg("unknown lightning mode: " + cfg.Lightning.Mode)
	}
}
