package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetcore/internal/config"
	"budgetcore/internal/database"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbManager, err := database.NewManager(&database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: "file::memory:",
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = dbManager.Close() })
	if err := dbManager.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return newRouter(dbManager, &config.Config{Env: "test", DefaultEnforcementLevel: "none"})
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	t.Run("health_outside_workspace_scope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("api_requires_workspace", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/budgets", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "MISSING_WORKSPACE") {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})
}
