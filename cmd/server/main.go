package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"keymarket/config"
	"keymarket/internal/api"
	identityRepo "keymarket/internal/identity/repository"
	identityUC "keymarket/internal/identity/usecase"
	"keymarket/internal/keyguard"
	"keymarket/internal/lightning"
	listingRepo "keymarket/internal/listing/repository"
	listingUC "keymarket/internal/listing/usecase"
	"keymarket/internal/notify"
	purchaseRepo "keymarket/internal/purchase/repository"
	purchaseUC "keymarket/internal/purchase/usecase"
	signingRepo "keymarket/internal/signing/repository"
	signingUC "keymarket/internal/signing/usecase"
	"keymarket/pkg/logger"
)

// sweepInterval drives the retention and TTL sweeps; the usecases decide
// what is stale, the ticker only decides how often to ask.
const sweepInterval = 10 * time.Minute

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := sqlDB.Ping(); err != nil {
		appLogger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	guard, err := keyguard.FromConfig(cfg)
	if err != nil {
		appLogger.Error("failed to init key guard", "err", err)
		os.Exit(1)
	}

	backend, err := lightning.FromConfig(cfg, *appLogger)
	if err != nil {
		appLogger.Error("failed to init lightning backend", "err", err)
		os.Exit(1)
	}
	verifier := lightning.NewRetryingVerifier(backend, cfg.Lightning.RetryAttempts, cfg.Lightning.RetryBaseWait, *appLogger)

	sink := notify.NewLogSink(*appLogger)

	accountRepository := identityRepo.NewAccountRepository(db, *appLogger)
	serviceRepository := listingRepo.NewServiceRepository(db, *appLogger)
	purchaseRepository := purchaseRepo.NewPurchaseRepository(db, *appLogger)
	signingRepository := signingRepo.NewSignatureRequestRepository(db, *appLogger)

	accountUsecase := identityUC.NewAccountUsecase(accountRepository, *appLogger)
	serviceUsecase := listingUC.NewServiceUsecase(serviceRepository, guard, purchaseRepository, *appLogger)
	purchaseUsecase := purchaseUC.NewPurchaseUsecase(
		purchaseRepository,
		serviceRepository,
		backend,
		verifier,
		guard,
		sink,
		cfg.Market.PurchaseRetention,
		*appLogger,
	)
	signingUsecase := signingUC.NewSignatureRequestUsecase(
		signingRepository,
		purchaseRepository,
		serviceRepository,
		backend,
		verifier,
		sink,
		cfg.Market.SignatureCooldown,
		cfg.Market.RequestTTL,
		*appLogger,
	)

	handler := api.NewHandler(accountUsecase, serviceUsecase, purchaseUsecase, signingUsecase, *appLogger)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Retention and TTL sweeps run on a schedule, never inside request
	// handling.
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := purchaseUsecase.SweepStalePending(ctx); err != nil {
					appLogger.Warn("pending purchase sweep failed", "err", err)
				}
				if _, err := signingUsecase.ExpireStale(ctx); err != nil {
					appLogger.Warn("signature request expiry sweep failed", "err", err)
				}
			}
		}
	}()

	port := cfg.Server.Port
	if port != "" && port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:              port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("starting keymarket server", "port", port, "lightning_mode", cfg.Lightning.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", "err", err)
	}
}
