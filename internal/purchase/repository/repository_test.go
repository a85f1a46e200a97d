package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	identity "keymarket/internal/identity/model"
	listing "keymarket/internal/listing/model"
	models "keymarket/internal/purchase/model"
	"keymarket/pkg/logger"
)

var (
	testDB      *bun.DB
	pgContainer *postgres.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbName := "keymarket"
	dbUser := "keymarket"
	dbPassword := "password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	pgContainer = postgresContainer

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*identity.Account)(nil),
		(*listing.Service)(nil),
		(*models.Purchase)(nil),
	}

	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	for _, table := range []string{"purchases", "services", "accounts"} {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE `+table+` RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	}
}

func seedPair(t *testing.T) (clientID uuid.UUID, serviceID uuid.UUID) {
	t.Helper()
	ctx := t.Context()

	provider := &identity.Account{Username: "provider", Role: identity.RoleProvider, CredentialHash: "x"}
	client := &identity.Account{Username: "client", Role: identity.RoleClient, CredentialHash: "x"}
	for _, a := range []*identity.Account{provider, client} {
		_, err := testDB.NewInsert().Model(a).Returning("*").Exec(ctx)
		require.NoError(t, err)
	}

	service := &listing.Service{
		ProviderID:        provider.ID,
		PolicyType:        "timelock",
		MasterFingerprint: "a1b2c3d4",
		DerivationPath:    "m/48'/0'/0'/2'",
		XpubFingerprint:   "fp-" + uuid.NewString(),
		XpubCiphertext:    []byte{0x01, 0x02, 0x03},
		ActivationFeeSats: 1000,
		LightningEndpoint: "provider@ln.example.com",
	}
	_, err := testDB.NewInsert().Model(service).Returning("*").Exec(ctx)
	require.NoError(t, err)

	return client.ID, service.ID
}

func Test_CreateAndGetByPaymentRef(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	clientID, serviceID := seedPair(t)
	repo := NewPurchaseRepository(testDB, logger.Logger{})

	p := &models.Purchase{ClientID: clientID, ServiceID: serviceID, PaymentRef: "ref-abc"}
	require.NoError(t, repo.CreatePurchase(t.Context(), p))
	require.NotEqual(t, uuid.Nil, p.ID)

	fetched, err := repo.GetByPaymentRef(t.Context(), "ref-abc")
	require.NoError(t, err)
	assert.Equal(t, p.ID, fetched.ID)
	assert.False(t, fetched.Active)
	assert.False(t, fetched.CreatedAt.IsZero())

	_, err = repo.GetByPaymentRef(t.Context(), "no-such-ref")
	assert.ErrorIs(t, err, ErrPurchaseNotFound)
}

func Test_PairUniqueConstraint(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	clientID, serviceID := seedPair(t)
	repo := NewPurchaseRepository(testDB, logger.Logger{})

	require.NoError(t, repo.CreatePurchase(t.Context(), &models.Purchase{
		ClientID: clientID, ServiceID: serviceID, PaymentRef: "ref-1",
	}))

	exists, err := repo.PairExists(t.Context(), clientID, serviceID)
	require.NoError(t, err)
	assert.True(t, exists)

	// Second row for the same pair must bounce off the composite unique
	// index even with a fresh payment reference.
	err = repo.CreatePurchase(t.Context(), &models.Purchase{
		ClientID: clientID, ServiceID: serviceID, PaymentRef: "ref-2",
	})
	assert.Error(t, err)
}

func Test_ActivateIsSingleWinner(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	clientID, serviceID := seedPair(t)
	repo := NewPurchaseRepository(testDB, logger.Logger{})

	require.NoError(t, repo.CreatePurchase(t.Context(), &models.Purchase{
		ClientID: clientID, ServiceID: serviceID, PaymentRef: "ref-race",
	}))

	const racers = 10
	var wg sync.WaitGroup
	wins := make(chan bool, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won, err := repo.Activate(context.Background(), "ref-race")
			if err != nil {
				t.Error(err)
				return
			}
			wins <- won
		}()
	}
	wg.Wait()
	close(wins)

	var winners int
	for won := range wins {
		if won {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	fetched, err := repo.GetByPaymentRef(t.Context(), "ref-race")
	require.NoError(t, err)
	assert.True(t, fetched.Active)
	assert.False(t, fetched.ActivatedAt.IsZero())
}

func Test_ActiveLookups(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	clientID, serviceID := seedPair(t)
	repo := NewPurchaseRepository(testDB, logger.Logger{})

	require.NoError(t, repo.CreatePurchase(t.Context(), &models.Purchase{
		ClientID: clientID, ServiceID: serviceID, PaymentRef: "ref-active",
	}))

	// Pending purchases are invisible to the active lookups.
	_, err := repo.GetActivePurchase(t.Context(), clientID, serviceID)
	assert.ErrorIs(t, err, ErrPurchaseNotFound)

	exists, err := repo.ActivePurchaseExistsForService(t.Context(), serviceID)
	require.NoError(t, err)
	assert.False(t, exists)

	won, err := repo.Activate(t.Context(), "ref-active")
	require.NoError(t, err)
	require.True(t, won)

	active, err := repo.GetActivePurchase(t.Context(), clientID, serviceID)
	require.NoError(t, err)
	assert.Equal(t, "ref-active", active.PaymentRef)

	exists, err = repo.ActivePurchaseExistsForService(t.Context(), serviceID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func Test_DeleteStalePending(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	clientID, serviceID := seedPair(t)
	repo := NewPurchaseRepository(testDB, logger.Logger{})

	stale := &models.Purchase{ClientID: clientID, ServiceID: serviceID, PaymentRef: "ref-stale"}
	require.NoError(t, repo.CreatePurchase(t.Context(), stale))
	_, err := testDB.NewUpdate().
		Model((*models.Purchase)(nil)).
		Set("created_at = ?", time.Now().Add(-48*time.Hour)).
		Where("payment_ref = ?", stale.PaymentRef).
		Exec(t.Context())
	require.NoError(t, err)

	reaped, err := repo.DeleteStalePending(t.Context(), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), reaped)

	_, err = repo.GetByPaymentRef(t.Context(), "ref-stale")
	assert.ErrorIs(t, err, ErrPurchaseNotFound)
}

func Test_DeleteStalePendingSparesActive(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	clientID, serviceID := seedPair(t)
	repo := NewPurchaseRepository(testDB, logger.Logger{})

	p := &models.Purchase{ClientID: clientID, ServiceID: serviceID, PaymentRef: "ref-old-active"}
	require.NoError(t, repo.CreatePurchase(t.Context(), p))
	won, err := repo.Activate(t.Context(), p.PaymentRef)
	require.NoError(t, err)
	require.True(t, won)

	_, err = testDB.NewUpdate().
		Model((*models.Purchase)(nil)).
		Set("created_at = ?", time.Now().Add(-72*time.Hour)).
		Where("payment_ref = ?", p.PaymentRef).
		Exec(t.Context())
	require.NoError(t, err)

	reaped, err := repo.DeleteStalePending(t.Context(), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), reaped)

	fetched, err := repo.GetByPaymentRef(t.Context(), p.PaymentRef)
	require.NoError(t, err)
	assert.True(t, fetched.Active)
}
