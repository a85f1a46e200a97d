package lightning

import (
	"context"
	"time"

	"keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

// RetryingVerifier applies the bounded retry budget around CheckSettlement.
// Only transport faults are retried; Pending and NotFound are answers.
type RetryingVerifier struct {
	backend  Backend
	attempts int
	baseWait time.Duration
	logger   logger.Logger
}

var _ Verifier = (*RetryingVerifier)(nil)

func NewRetryingVerifier(backend Backend, attempts int, baseWait time.Duration, log logger.Logger) *RetryingVerifier {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryingVerifier{backend: backend, attempts: attempts, baseWait: baseWait, logger: log}
}

func (v *RetryingVerifier) Verify(ctx context.Context, paymentRef string) (SettlementStatus, error) {
	if paymentRef == "" {
		return "", errors.ErrInvalidPaymentRef
	}

	wait := v.baseWait
	var lastErr error
	for attempt := 1; attempt <= v.attempts; attempt++ {
		status, err := v.backend.CheckSettlement(ctx, paymentRef)
		if err == nil {
			return status, nil
		}
		if errors.CodeOf(err) != errors.CodeUnavailable {
			return "", err
		}

		lastErr = err
		if attempt == v.attempts {
			break
		}
		v.logger.Warn("settlement check failed, retrying", "attempt", attempt, "err", err)

		select {
		case <-ctx.Done():
			return "", errors.Wrap(errors.CodeUnavailable, "verification cancelled", ctx.Err())
		case <-time.After(wait):
		}
		wait *= 2
	}

	return "", errors.ErrVerificationFailed(lastErr)
}
