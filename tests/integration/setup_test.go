package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"budgetcore/internal/handlers"
	"budgetcore/internal/logger"
	"budgetcore/internal/middleware"
	"budgetcore/internal/models"
	"budgetcore/internal/services"
	"budgetcore/internal/uuid"
	"budgetcore/internal/validator"
)

const pipelineKey = "integration-pipeline-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integration%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	periodService := services.NewPeriodService(db)
	enforcementService := services.NewEnforcementService(db, periodService)
	associationService := services.NewAssociationService(db)
	allocationService := services.NewAllocationService(db, periodService, enforcementService)
	budgetService := services.NewBudgetService(db, associationService, periodService, models.EnforcementWarning)
	recommendationService := services.NewRecommendationService(db, budgetService, 30*24*time.Hour, 7*24*time.Hour)
	transactionService := services.NewTransactionService(db, allocationService)
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	budgetHandler := handlers.NewBudgetHandler(budgetService, associationService, enforcementService, allocationService, auditService)
	periodHandler := handlers.NewPeriodHandler(periodService, allocationService, auditService)
	allocationHandler := handlers.NewAllocationHandler(allocationService, auditService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.WorkspaceScope())

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/applicable", budgetHandler.GetApplicableBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.PUT("/:id/status", budgetHandler.SetBudgetStatus)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.PUT("/:id/accounts", budgetHandler.SyncAccounts)
	budgets.PUT("/:id/categories", budgetHandler.SyncCategories)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)
	budgets.POST("/:id/check", budgetHandler.CheckAllocation)
	budgets.GET("/:id/periods", periodHandler.ListPeriods)
	budgets.POST("/:id/periods", periodHandler.CreatePeriod)
	budgets.GET("/:id/periods/current", periodHandler.GetCurrentPeriod)
	budgets.POST("/:id/periods/:periodId/recalculate", periodHandler.RecalculatePeriod)

	periods := v1.Group("/periods")
	periods.GET("/:id", periodHandler.GetPeriod)
	periods.POST("/:id/close", periodHandler.ClosePeriod)

	allocations := v1.Group("/allocations")
	allocations.POST("", allocationHandler.CreateAllocation)
	allocations.POST("/split", allocationHandler.SplitTransaction)
	allocations.DELETE("/:id", allocationHandler.DeleteAllocation)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.GET("/:id/allocations", allocationHandler.GetTransactionAllocations)
	transactions.POST("/:id/auto-assign", allocationHandler.AutoAssign)

	recommendations := v1.Group("/recommendations")
	recommendations.POST("", middleware.PipelineAuthMiddleware(pipelineKey), recommendationHandler.CreateRecommendation)
	recommendations.GET("", recommendationHandler.GetRecommendations)
	recommendations.GET("/:id", recommendationHandler.GetRecommendation)
	recommendations.POST("/:id/dismiss", recommendationHandler.DismissRecommendation)
	recommendations.POST("/:id/restore", recommendationHandler.RestoreRecommendation)
	recommendations.POST("/:id/apply", recommendationHandler.ApplyRecommendation)

	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)

	v1.POST("/categories", categoryHandler.CreateCategory)
	v1.GET("/categories", categoryHandler.GetCategories)
	v1.POST("/payees", categoryHandler.CreatePayee)
	v1.GET("/payees", categoryHandler.GetPayees)

	return &testApp{DB: db, Router: router}
}

// newWorkspace returns a fresh workspace ID.
func newWorkspace() string {
	return uuid.New()
}

// request makes an HTTP request scoped to workspaceID and returns the recorder.
func (app *testApp) request(method, path, body, workspaceID string) *httptest.ResponseRecorder {
	return app.requestWithHeaders(method, path, body, map[string]string{middleware.WorkspaceHeader: workspaceID})
}

// pipelineRequest submits a request the way the analysis pipeline does.
func (app *testApp) pipelineRequest(method, path, body, workspaceID, apiKey string) *httptest.ResponseRecorder {
	return app.requestWithHeaders(method, path, body, map[string]string{
		middleware.WorkspaceHeader: workspaceID,
		"X-API-Key":                apiKey,
	})
}

func (app *testApp) requestWithHeaders(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// expectStatus fails the test unless the recorder holds the wanted status.
func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// expectErrorCode checks the error code of an error response.
func expectErrorCode(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	body := parseJSON(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	if errObj["code"] != want {
		t.Fatalf("expected error code %s, got %v", want, errObj["code"])
	}
}

// object extracts a nested JSON object by key.
func object(t *testing.T, m map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	v, ok := m[key].(map[string]interface{})
	if !ok {
		t.Fatalf("expected %q to be an object, got %v", key, m[key])
	}
	return v
}

// createAccount creates an account and returns its ID.
func (app *testApp) createAccount(t *testing.T, workspaceID, name string) string {
	t.Helper()
	rec := app.request(http.MethodPost, "/api/v1/accounts", fmt.Sprintf(`{"name":%q}`, name), workspaceID)
	expectStatus(t, rec, http.StatusCreated)
	return object(t, parseJSON(t, rec), "account")["id"].(string)
}

// createCategory creates an expense category and returns its ID.
func (app *testApp) createCategory(t *testing.T, workspaceID, name string) string {
	t.Helper()
	rec := app.request(http.MethodPost, "/api/v1/categories", fmt.Sprintf(`{"name":%q,"type":"expense"}`, name), workspaceID)
	expectStatus(t, rec, http.StatusCreated)
	return object(t, parseJSON(t, rec), "category")["id"].(string)
}

// createAccountBudget creates a monthly account budget linked to accountID.
func (app *testApp) createAccountBudget(t *testing.T, workspaceID, name, accountID, level string, allocated int64) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"type":"account-monthly","enforcement_level":%q,`+
		`"period":{"type":"monthly","start_day_of_month":1,"allocated_amount":%d},`+
		`"accounts":[{"account_id":%q}]}`, name, level, allocated, accountID)
	rec := app.request(http.MethodPost, "/api/v1/budgets", body, workspaceID)
	expectStatus(t, rec, http.StatusCreated)
	return object(t, parseJSON(t, rec), "budget")["id"].(string)
}

// createTransaction records an expense dated date and returns the response body.
func (app *testApp) createTransaction(t *testing.T, workspaceID, accountID string, amount int64, date string) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"account_id":%q,"amount":%d,"description":"test","date":%q}`, accountID, amount, date)
	rec := app.request(http.MethodPost, "/api/v1/transactions", body, workspaceID)
	expectStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)
}

// today is the current UTC date in storage format.
func today() string {
	return time.Now().UTC().Format(models.DateLayout)
}
