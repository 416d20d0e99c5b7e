// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budgetbook/backend/config"
	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/application/usecase/auth"
	"github.com/budgetbook/backend/internal/application/usecase/backup"
	"github.com/budgetbook/backend/internal/application/usecase/importexport"
	"github.com/budgetbook/backend/internal/application/usecase/receipt"
	"github.com/budgetbook/backend/internal/application/usecase/report"
	"github.com/budgetbook/backend/internal/infra/db"
	"github.com/budgetbook/backend/internal/infra/server/router"
	"github.com/budgetbook/backend/internal/integration/adapters"
	"github.com/budgetbook/backend/internal/integration/email"
	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetbook/backend/internal/integration/persistence"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Store    *store.Store
	Worker   *persistence.Worker
	Router   *router.Router
	Backend  adapter.KeyValueBackend
	Database *db.Database
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The store is populated from durable storage before the injector returns.
func NewInjector(ctx context.Context, cfg *config.Config) (*Injector, error) {
	inj := &Injector{Config: cfg}

	backend, err := inj.buildBackend(cfg)
	if err != nil {
		return nil, err
	}
	inj.Backend = backend

	notifier := adapters.NewLogNotifier()
	persister := persistence.NewSlicePersister(backend, notifier)

	worker := persistence.NewWorker(persister, persistence.WorkerConfig{
		QueueSize:  cfg.Worker.QueueSize,
		MaxRetries: cfg.Worker.MaxRetries,
		RetryDelay: cfg.Worker.RetryDelay,
	})
	inj.Worker = worker

	initial := store.LoadInitialState(ctx, persister)
	financeStore := store.New(initial, worker)
	inj.Store = financeStore

	// Services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	var scanner adapter.ReceiptScanner
	if cfg.AI.GeminiAPIKey != "" {
		scanner = adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Use cases
	issueTokenUseCase := auth.NewIssueTokenUseCase(tokenService, cfg.Auth.AccessKeyHash, cfg.Auth.AdminKeyHash)

	createBackupUseCase := backup.NewCreateBackupUseCase(financeStore)
	restoreBackupUseCase := backup.NewRestoreBackupUseCase(financeStore, notifier)
	resetDefaultsUseCase := backup.NewResetDefaultsUseCase(financeStore, backend, persister, notifier)
	emailBackupUseCase := backup.NewEmailBackupUseCase(createBackupUseCase, sender, financeStore)

	spendingUseCase := report.NewCategorySpendingUseCase(financeStore)
	utilizationUseCase := report.NewBudgetUtilizationUseCase(financeStore)
	alertsUseCase := report.NewOverBudgetAlertsUseCase(utilizationUseCase)

	scanReceiptUseCase := receipt.NewScanReceiptUseCase(financeStore, scanner)

	importCSVUseCase := importexport.NewImportCSVUseCase(financeStore)
	exportCSVUseCase := importexport.NewExportCSVUseCase(financeStore)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return backend.Ping(pingCtx) == nil
	})
	authController := controller.NewAuthController(issueTokenUseCase)
	dispatchController := controller.NewDispatchController(financeStore)
	stateController := controller.NewStateController(financeStore)
	reportController := controller.NewReportController(spendingUseCase, utilizationUseCase, alertsUseCase)
	backupController := controller.NewBackupController(createBackupUseCase, restoreBackupUseCase, resetDefaultsUseCase, emailBackupUseCase)
	receiptController := controller.NewReceiptController(scanReceiptUseCase)
	csvController := controller.NewCSVController(importCSVUseCase, exportCSVUseCase)

	// Middleware
	var tokenRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		tokenRateLimiter = middleware.NewRateLimiterWithConfig(1000, cfg.Auth.RateLimitWindow)
	} else {
		tokenRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Auth.RateLimitMax, cfg.Auth.RateLimitWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	inj.Router = router.NewRouter(
		healthController,
		authController,
		dispatchController,
		stateController,
		reportController,
		backupController,
		receiptController,
		csvController,
		tokenRateLimiter,
		authMiddleware,
	)

	return inj, nil
}

// buildBackend opens the configured durable key-value backend.
func (inj *Injector) buildBackend(cfg *config.Config) (adapter.KeyValueBackend, error) {
	switch cfg.Storage.Backend {
	case "redis", "":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return persistence.NewRedisBackend(client, cfg.Storage.KeyPrefix), nil

	case "sql":
		database, err := db.NewConnection(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(&model.KeyValueModel{}); err != nil {
			return nil, err
		}
		inj.Database = database
		return persistence.NewSQLBackend(database.DB()), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Close releases backend resources owned by the injector.
func (inj *Injector) Close() error {
	if inj.Database != nil {
		return inj.Database.Close()
	}
	return nil
}
