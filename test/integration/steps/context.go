// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/application/usecase/auth"
	"github.com/budgetbook/backend/internal/application/usecase/backup"
	"github.com/budgetbook/backend/internal/application/usecase/importexport"
	"github.com/budgetbook/backend/internal/application/usecase/receipt"
	"github.com/budgetbook/backend/internal/application/usecase/report"
	"github.com/budgetbook/backend/internal/infra/server/router"
	"github.com/budgetbook/backend/internal/integration/adapters"
	"github.com/budgetbook/backend/internal/integration/email"
	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetbook/backend/internal/integration/persistence"
	"github.com/budgetbook/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the per-scenario server and HTTP state.
type testContext struct {
	server       *httptest.Server
	backend      adapter.KeyValueBackend
	store        *store.Store
	emailSender  *email.MockEmailSender
	workerCancel context.CancelFunc

	headers     map[string]string
	accessToken string
	response    *response
}

type response struct {
	status int
	body   []byte
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario wires a fresh server over empty durable storage and
// registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.before(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// Auth steps
	ctx.Step(`^I am authenticated with the access key$`, test.iAmAuthenticatedWithTheAccessKey)
	ctx.Step(`^I am authenticated with the admin key$`, test.iAmAuthenticatedWithTheAdminKey)
	ctx.Step(`^I am not authenticated$`, test.iAmNotAuthenticated)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Durable storage assertion steps
	ctx.Step(`^the slice "([^"]*)" should be persisted$`, test.theSliceShouldBePersisted)
	ctx.Step(`^the persisted slice "([^"]*)" should equal "([^"]*)"$`, test.thePersistedSliceShouldEqual)

	// Email assertion steps
	ctx.Step(`^a backup email should be sent to "([^"]*)"$`, test.aBackupEmailShouldBeSentTo)
}

// before builds the full application stack over a flushed in-memory Redis.
func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil

	client := mock.NewRedis()
	if err := mock.ClearRedis(client); err != nil {
		return err
	}

	backend := persistence.NewRedisBackend(client, "budgetbook:")
	t.backend = backend

	notifier := adapters.NewLogNotifier()
	persister := persistence.NewSlicePersister(backend, notifier)

	worker := persistence.NewWorker(persister, persistence.WorkerConfig{
		QueueSize:  64,
		MaxRetries: 1,
		RetryDelay: 10 * time.Millisecond,
	})
	workerCtx, cancel := context.WithCancel(context.Background())
	t.workerCancel = cancel
	go worker.Start(workerCtx)

	initial := store.LoadInitialState(context.Background(), persister)
	financeStore := store.New(initial, worker)
	t.store = financeStore

	tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)
	accessHash, adminHash := mock.KeyHashes()

	t.emailSender = email.NewMockEmailSender()

	issueTokenUseCase := auth.NewIssueTokenUseCase(tokenService, accessHash, adminHash)

	createBackupUseCase := backup.NewCreateBackupUseCase(financeStore)
	restoreBackupUseCase := backup.NewRestoreBackupUseCase(financeStore, notifier)
	resetDefaultsUseCase := backup.NewResetDefaultsUseCase(financeStore, backend, persister, notifier)
	emailBackupUseCase := backup.NewEmailBackupUseCase(createBackupUseCase, t.emailSender, financeStore)

	spendingUseCase := report.NewCategorySpendingUseCase(financeStore)
	utilizationUseCase := report.NewBudgetUtilizationUseCase(financeStore)
	alertsUseCase := report.NewOverBudgetAlertsUseCase(utilizationUseCase)

	// No scanner configured: scan scenarios assert the unavailable path.
	scanReceiptUseCase := receipt.NewScanReceiptUseCase(financeStore, nil)

	importCSVUseCase := importexport.NewImportCSVUseCase(financeStore)
	exportCSVUseCase := importexport.NewExportCSVUseCase(financeStore)

	healthController := controller.NewHealthController(func() bool {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), time.Second)
		defer pingCancel()
		return backend.Ping(pingCtx) == nil
	})
	authController := controller.NewAuthController(issueTokenUseCase)
	dispatchController := controller.NewDispatchController(financeStore)
	stateController := controller.NewStateController(financeStore)
	reportController := controller.NewReportController(spendingUseCase, utilizationUseCase, alertsUseCase)
	backupController := controller.NewBackupController(createBackupUseCase, restoreBackupUseCase, resetDefaultsUseCase, emailBackupUseCase)
	receiptController := controller.NewReceiptController(scanReceiptUseCase)
	csvController := controller.NewCSVController(importCSVUseCase, exportCSVUseCase)

	tokenRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
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

	t.server = httptest.NewServer(r.Setup("test"))
	return nil
}

func (t *testContext) after() {
	if t.workerCancel != nil {
		t.workerCancel()
	}
	if t.server != nil {
		t.server.Close()
	}
}
