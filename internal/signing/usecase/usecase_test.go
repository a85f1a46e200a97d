package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymarket/internal/lightning"
	listingmodels "keymarket/internal/listing/model"
	"keymarket/internal/notify"
	purchasemodels "keymarket/internal/purchase/model"
	"keymarket/internal/signing"
	models "keymarket/internal/signing/model"
	appErrors "keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

// memoryRepo backs the state-machine tests with a real guarded transition.
type memoryRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*models.SignatureRequest
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{requests: make(map[uuid.UUID]*models.SignatureRequest)}
}

func (r *memoryRepo) CreateRequest(ctx context.Context, req *models.SignatureRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SignatureRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, appErrors.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *memoryRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.SignatureRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SignatureRequest
	for _, req := range r.requests {
		if req.ClientID == clientID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *memoryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != from {
		return false, nil
	}
	req.Status = to
	req.UpdatedAt = time.Now()
	return true, nil
}

func (r *memoryRepo) SetSigned(ctx context.Context, id uuid.UUID, signedPsbt string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != models.StatusEligible {
		return false, nil
	}
	req.Status = models.StatusSigned
	req.SignedPsbt = signedPsbt
	req.UpdatedAt = time.Now()
	return true, nil
}

func (r *memoryRepo) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var expired int64
	for _, req := range r.requests {
		if (req.Status == models.StatusCreated || req.Status == models.StatusEligible) && req.ExpiresAt.Before(now) {
			req.Status = models.StatusExpired
			expired++
		}
	}
	return expired, nil
}

type purchasesFake struct {
	active map[uuid.UUID]uuid.UUID // clientID -> serviceID
}

func (p *purchasesFake) GetActivePurchase(ctx context.Context, clientID, serviceID uuid.UUID) (*purchasemodels.Purchase, error) {
	if p.active[clientID] == serviceID {
		return &purchasemodels.Purchase{ClientID: clientID, ServiceID: serviceID, Active: true}, nil
	}
	return nil, appErrors.ErrPurchaseNotFound
}

type catalogFake struct {
	service *listingmodels.Service
}

func (c *catalogFake) GetServiceByID(ctx context.Context, id uuid.UUID) (*listingmodels.Service, error) {
	if c.service != nil && c.service.ID == id {
		return c.service, nil
	}
	return nil, appErrors.ErrServiceNotFound
}

type countingSink struct {
	activated atomic.Int64
	finalized atomic.Int64
}

func (s *countingSink) PurchaseActivated(ctx context.Context, event notify.PurchaseActivatedEvent) error {
	s.activated.Add(1)
	return nil
}

func (s *countingSink) SignatureFinalized(ctx context.Context, event notify.SignatureFinalizedEvent) error {
	s.finalized.Add(1)
	return nil
}

type fixture struct {
	uc       *SignatureRequestUsecase
	repo     *memoryRepo
	backend  *lightning.MockBackend
	sink     *countingSink
	clientID uuid.UUID
	service  *listingmodels.Service
}

func newFixture(t *testing.T, perSignatureFee int64, cooldown time.Duration) *fixture {
	t.Helper()

	clientID := uuid.New()
	service := &listingmodels.Service{
		ID:                  uuid.New(),
		ProviderID:          uuid.New(),
		PolicyType:          "timelock",
		PerSignatureFeeSats: perSignatureFee,
	}

	repo := newMemoryRepo()
	backend := lightning.NewMockBackend()
	verifier := lightning.NewRetryingVerifier(backend, 1, time.Millisecond, logger.Logger{})
	sink := &countingSink{}

	uc := NewSignatureRequestUsecase(
		repo,
		&purchasesFake{active: map[uuid.UUID]uuid.UUID{clientID: service.ID}},
		&catalogFake{service: service},
		backend,
		verifier,
		sink,
		cooldown,
		72*time.Hour,
		logger.Logger{},
	)

	return &fixture{uc: uc, repo: repo, backend: backend, sink: sink, clientID: clientID, service: service}
}

func TestCreate_RequiresActivePurchase(t *testing.T) {
	f := newFixture(t, 0, time.Hour)

	_, err := f.uc.Create(context.Background(), signing.CreateCommand{
		ClientID:  uuid.New(), // no purchase for this client
		ServiceID: f.service.ID,
		PsbtData:  "cHNidP8BAHEC",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeFailedPrecondition, appErrors.CodeOf(err))
}

func TestCreate_EmptyPayloadRejected(t *testing.T) {
	f := newFixture(t, 0, time.Hour)

	_, err := f.uc.Create(context.Background(), signing.CreateCommand{
		ClientID:  f.clientID,
		ServiceID: f.service.ID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
}

func TestCreate_FeeInvoiceOnlyWhenFeeCharged(t *testing.T) {
	t.Run("zero fee", func(t *testing.T) {
		f := newFixture(t, 0, time.Hour)
		dto, err := f.uc.Create(context.Background(), signing.CreateCommand{
			ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
		})
		require.NoError(t, err)
		assert.Empty(t, dto.FeePaymentRef)
		assert.Equal(t, models.StatusCreated, dto.Status)
	})

	t.Run("nonzero fee", func(t *testing.T) {
		f := newFixture(t, 500, time.Hour)
		dto, err := f.uc.Create(context.Background(), signing.CreateCommand{
			ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, dto.FeePaymentRef)
	})
}

func TestCheckEligibility_Gating(t *testing.T) {
	ctx := context.Background()

	t.Run("cooldown holds even with fee paid", func(t *testing.T) {
		f := newFixture(t, 500, time.Hour)
		dto, err := f.uc.Create(ctx, signing.CreateCommand{
			ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
		})
		require.NoError(t, err)
		f.backend.MarkSettled(dto.FeePaymentRef)

		elig, err := f.uc.CheckEligibility(ctx, dto.ID)
		require.NoError(t, err)
		assert.False(t, elig.Eligible)
		assert.Equal(t, signing.ReasonCooldownNotElapsed, elig.Reason)
	})

	t.Run("unpaid fee holds even after cooldown", func(t *testing.T) {
		f := newFixture(t, 500, time.Hour)
		dto, err := f.uc.Create(ctx, signing.CreateCommand{
			ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
		})
		require.NoError(t, err)

		f.uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		elig, err := f.uc.CheckEligibility(ctx, dto.ID)
		require.NoError(t, err)
		assert.False(t, elig.Eligible)
		assert.Equal(t, signing.ReasonFeeNotPaid, elig.Reason)
	})

	t.Run("zero fee and elapsed cooldown is eligible", func(t *testing.T) {
		f := newFixture(t, 0, time.Hour)
		dto, err := f.uc.Create(ctx, signing.CreateCommand{
			ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
		})
		require.NoError(t, err)

		f.uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		elig, err := f.uc.CheckEligibility(ctx, dto.ID)
		require.NoError(t, err)
		assert.True(t, elig.Eligible)
		assert.Equal(t, models.StatusEligible, elig.Status)
	})
}

// Scenario: ten-minute cooldown, zero fee, polled at one and eleven minutes,
// then signed once.
func TestSigningRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0, 10*time.Minute)
	start := time.Now()

	f.uc.now = func() time.Time { return start }
	dto, err := f.uc.Create(ctx, signing.CreateCommand{
		ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
	})
	require.NoError(t, err)

	f.uc.now = func() time.Time { return start.Add(time.Minute) }
	elig, err := f.uc.CheckEligibility(ctx, dto.ID)
	require.NoError(t, err)
	assert.False(t, elig.Eligible)
	assert.Equal(t, signing.ReasonCooldownNotElapsed, elig.Reason)

	f.uc.now = func() time.Time { return start.Add(11 * time.Minute) }
	elig, err = f.uc.CheckEligibility(ctx, dto.ID)
	require.NoError(t, err)
	assert.True(t, elig.Eligible)

	signed, err := f.uc.Sign(ctx, dto.ID, "cHNidP8BAHEC-signed")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSigned, signed.Status)
	assert.Equal(t, "cHNidP8BAHEC-signed", signed.SignedPsbt)

	// Already signed; a second signature attempt fails closed.
	_, err = f.uc.Sign(ctx, dto.ID, "cHNidP8BAHEC-signed-again")
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeFailedPrecondition, appErrors.CodeOf(err))
}

func TestSign_IneligibleFailsClosed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0, time.Hour)

	dto, err := f.uc.Create(ctx, signing.CreateCommand{
		ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
	})
	require.NoError(t, err)

	// Still in created: cooldown has not elapsed and nobody flipped it.
	_, err = f.uc.Sign(ctx, dto.ID, "cHNidP8BAHEC-signed")
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeFailedPrecondition, appErrors.CodeOf(err))
}

func TestFinalize_NotifiesOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0, 0)

	dto, err := f.uc.Create(ctx, signing.CreateCommand{
		ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
	})
	require.NoError(t, err)

	_, err = f.uc.CheckEligibility(ctx, dto.ID)
	require.NoError(t, err)
	_, err = f.uc.Sign(ctx, dto.ID, "cHNidP8BAHEC-signed")
	require.NoError(t, err)

	final, err := f.uc.Finalize(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinalized, final.Status)

	_, err = f.uc.Finalize(ctx, dto.ID)
	require.Error(t, err)

	assert.Equal(t, int64(1), f.sink.finalized.Load())
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("created request can be rejected", func(t *testing.T) {
		f := newFixture(t, 0, time.Hour)
		dto, err := f.uc.Create(ctx, signing.CreateCommand{
			ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
		})
		require.NoError(t, err)

		rejected, err := f.uc.Reject(ctx, dto.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, rejected.Status)

		// Terminal: eligibility polls report the terminal state, no reason.
		elig, err := f.uc.CheckEligibility(ctx, dto.ID)
		require.NoError(t, err)
		assert.False(t, elig.Eligible)
		assert.Equal(t, models.StatusRejected, elig.Status)
	})

	t.Run("signed request cannot be rejected", func(t *testing.T) {
		f := newFixture(t, 0, 0)
		dto, err := f.uc.Create(ctx, signing.CreateCommand{
			ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
		})
		require.NoError(t, err)
		_, err = f.uc.CheckEligibility(ctx, dto.ID)
		require.NoError(t, err)
		_, err = f.uc.Sign(ctx, dto.ID, "cHNidP8BAHEC-signed")
		require.NoError(t, err)

		_, err = f.uc.Reject(ctx, dto.ID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeFailedPrecondition, appErrors.CodeOf(err))
	})
}

func TestExpireStale(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0, time.Hour)

	dto, err := f.uc.Create(ctx, signing.CreateCommand{
		ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
	})
	require.NoError(t, err)

	// Nothing past its TTL yet.
	expired, err := f.uc.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), expired)

	f.uc.now = func() time.Time { return time.Now().Add(100 * time.Hour) }
	expired, err = f.uc.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	elig, err := f.uc.CheckEligibility(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusExpired, elig.Status)
	assert.False(t, elig.Eligible)
}

func TestCheckEligibility_ConcurrentPolls(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0, 0)

	dto, err := f.uc.Create(ctx, signing.CreateCommand{
		ClientID: f.clientID, ServiceID: f.service.ID, PsbtData: "cHNidP8BAHEC",
	})
	require.NoError(t, err)

	const pollers = 8
	var wg sync.WaitGroup
	for i := 0; i < pollers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			elig, err := f.uc.CheckEligibility(ctx, dto.ID)
			if err != nil {
				t.Error(err)
				return
			}
			if !elig.Eligible {
				t.Errorf("expected eligible, got %q (%s)", elig.Status, elig.Reason)
			}
		}()
	}
	wg.Wait()

	req, err := f.repo.GetByID(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEligible, req.Status)
}
