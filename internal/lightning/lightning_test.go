package lightning

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

func TestMockBackendLifecycle(t *testing.T) {
	m := NewMockBackend()
	ctx := context.Background()

	ref, err := m.CreateInvoice(ctx, 1000, "activation fee")
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	status, err := m.CheckSettlement(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	m.MarkSettled(ref)
	status, err = m.CheckSettlement(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, StatusSettled, status)

	// Checking twice must not change anything.
	status, err = m.CheckSettlement(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, StatusSettled, status)
}

func TestMockBackendPatternAndUnknown(t *testing.T) {
	m := NewMockBackend()
	ctx := context.Background()

	status, err := m.CheckSettlement(ctx, "test-ref"+SettledSuffix)
	require.NoError(t, err)
	assert.Equal(t, StatusSettled, status)

	status, err = m.CheckSettlement(ctx, "never-issued")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, status)

	_, err = m.CheckSettlement(ctx, "")
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
}

func TestLNURLBackendVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/verify/settled-hash":
			w.Write([]byte(`{"status":"OK","settled":true,"pr":"lnbc1..."}`))
		case "/verify/pending-hash":
			w.Write([]byte(`{"status":"OK","settled":false,"pr":"lnbc1..."}`))
		case "/verify/unknown-hash":
			w.Write([]byte(`{"status":"ERROR","reason":"not found"}`))
		case "/invoice":
			w.Write([]byte(`{"status":"OK","pr":"lnbc1...","verify":"http://` + r.Host + `/verify/new-hash"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	b, err := NewLNURLBackend(srv.URL+"/invoice", srv.URL+"/verify", time.Second, logger.Logger{})
	require.NoError(t, err)
	ctx := context.Background()

	status, err := b.CheckSettlement(ctx, "settled-hash")
	require.NoError(t, err)
	assert.Equal(t, StatusSettled, status)

	status, err = b.CheckSettlement(ctx, "pending-hash")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	status, err = b.CheckSettlement(ctx, "unknown-hash")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, status)

	ref, err := b.CreateInvoice(ctx, 1000, "fee")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", ref)
}

func TestLNURLBackendTransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	b, err := NewLNURLBackend(srv.URL+"/invoice", srv.URL+"/verify", time.Second, logger.Logger{})
	require.NoError(t, err)

	_, err = b.CheckSettlement(context.Background(), "any")
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeUnavailable, appErrors.CodeOf(err))
}

type flakyBackend struct {
	failures int32
	inner    Backend
}

func (f *flakyBackend) CreateInvoice(ctx context.Context, amountSats uint64, memo string) (string, error) {
	return f.inner.CreateInvoice(ctx, amountSats, memo)
}

func (f *flakyBackend) CheckSettlement(ctx context.Context, paymentRef string) (SettlementStatus, error) {
	if atomic.AddInt32(&f.failures, -1) >= 0 {
		return "", appErrors.ErrBackendUnavailable
	}
	return f.inner.CheckSettlement(ctx, paymentRef)
}

func TestRetryingVerifierRecovers(t *testing.T) {
	mock := NewMockBackend()
	flaky := &flakyBackend{failures: 2, inner: mock}
	v := NewRetryingVerifier(flaky, 3, time.Millisecond, logger.Logger{})

	status, err := v.Verify(context.Background(), "ref"+SettledSuffix)
	require.NoError(t, err)
	assert.Equal(t, StatusSettled, status)
}

func TestRetryingVerifierExhaustsBudget(t *testing.T) {
	flaky := &flakyBackend{failures: 10, inner: NewMockBackend()}
	v := NewRetryingVerifier(flaky, 3, time.Millisecond, logger.Logger{})

	_, err := v.Verify(context.Background(), "some-ref")
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeUnavailable, appErrors.CodeOf(err))
	// 3 attempts consumed out of the 10 failures budgeted
	assert.Equal(t, int32(7), atomic.LoadInt32(&flaky.failures))
}

func TestRetryingVerifierDoesNotRetryAnswers(t *testing.T) {
	mock := NewMockBackend()
	v := NewRetryingVerifier(mock, 3, time.Millisecond, logger.Logger{})

	status, err := v.Verify(context.Background(), "unknown-ref")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, status)
}
