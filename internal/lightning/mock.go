package lightning

import (
	"context"
	"strings"
	"sync"

	"keymarket/pkg/errors"
	"keymarket/pkg/utils"
)

// SettledSuffix marks a payment reference as deterministically settled in
// mock mode, so flows can be exercised without a live node.
const SettledSuffix = "-paid"

// MockBackend satisfies the Backend contract without a node. References it
// issued report Pending until marked settled; references carrying the
// settled suffix always report Settled; everything else is NotFound.
type MockBackend struct {
	mu      sync.Mutex
	settled map[string]bool
}

var _ Backend = (*MockBackend)(nil)

func NewMockBackend() *MockBackend {
	return &MockBackend{settled: make(map[string]bool)}
}

func (m *MockBackend) CreateInvoice(ctx context.Context, amountSats uint64, memo string) (string, error) {
	ref, err := utils.GeneratePaymentRef()
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, "generate payment ref", err)
	}

	m.mu.Lock()
	m.settled[ref] = false
	m.mu.Unlock()
	return ref, nil
}

func (m *MockBackend) CheckSettlement(ctx context.Context, paymentRef string) (SettlementStatus, error) {
	if paymentRef == "" {
		return "", errors.ErrInvalidPaymentRef
	}
	if strings.HasSuffix(paymentRef, SettledSuffix) {
		return StatusSettled, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	settled, known := m.settled[paymentRef]
	if !known {
		return StatusNotFound, nil
	}
	if settled {
		return StatusSettled, nil
	}
	return StatusPending, nil
}

// MarkSettled flips an issued reference to settled. Test and demo hook,
// not part of the Backend contract.
func (m *MockBackend) MarkSettled(paymentRef string) {
	m.mu.Lock()
	m.settled[paymentRef] = true
	m.mu.Unlock()
}
