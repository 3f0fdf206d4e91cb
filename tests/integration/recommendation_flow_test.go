package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestRecommendationFlow_ApplyAndDeleteBudget(t *testing.T) {
	app := setupApp(t)
	ws := newWorkspace()

	accountID := app.createAccount(t, ws, "Checking")
	categoryID := app.createCategory(t, ws, "Groceries")
	draft := fmt.Sprintf(`{"type":"create_budget","title":"Groceries budget","priority":"high","confidence":80,`+
		`"account_id":%q,"category_id":%q,"metadata":{"suggestedType":"category-envelope","suggestedAmount":40000}}`,
		accountID, categoryID)

	// The intake requires the pipeline key
	rec := app.pipelineRequest(http.MethodPost, "/api/v1/recommendations", draft, ws, "")
	expectStatus(t, rec, http.StatusUnauthorized)
	expectErrorCode(t, rec, "INVALID_API_KEY")

	rec = app.pipelineRequest(http.MethodPost, "/api/v1/recommendations", draft, ws, pipelineKey)
	expectStatus(t, rec, http.StatusCreated)
	recID := object(t, parseJSON(t, rec), "recommendation")["id"].(string)

	// Submitting the same proposal again returns the pending one
	rec = app.pipelineRequest(http.MethodPost, "/api/v1/recommendations", draft, ws, pipelineKey)
	expectStatus(t, rec, http.StatusOK)
	if id := object(t, parseJSON(t, rec), "recommendation")["id"]; id != recID {
		t.Errorf("expected existing recommendation %s, got %v", recID, id)
	}

	// Apply creates the budget
	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/recommendations/%s/apply", recID), "", ws)
	expectStatus(t, rec, http.StatusCreated)
	applied := parseJSON(t, rec)
	budget := object(t, applied, "budget")
	budgetID := budget["id"].(string)
	if budget["type"] != "category-envelope" || budget["name"] != "Groceries budget" {
		t.Errorf("unexpected budget: %v", budget)
	}
	if status := object(t, applied, "recommendation")["status"]; status != "applied" {
		t.Errorf("expected applied, got %v", status)
	}

	// Applying twice is a conflict
	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/recommendations/%s/apply", recID), "", ws)
	expectStatus(t, rec, http.StatusConflict)
	expectErrorCode(t, rec, "RECOMMENDATION_NOT_PENDING")

	// Deleting the budget puts the recommendation back to pending
	rec = app.request(http.MethodDelete, fmt.Sprintf("/api/v1/budgets/%s", budgetID), "", ws)
	expectStatus(t, rec, http.StatusOK)

	rec = app.request(http.MethodGet, fmt.Sprintf("/api/v1/recommendations/%s", recID), "", ws)
	expectStatus(t, rec, http.StatusOK)
	recommendation := object(t, parseJSON(t, rec), "recommendation")
	if recommendation["status"] != "pending" {
		t.Errorf("expected pending after budget delete, got %v", recommendation["status"])
	}
	if _, ok := recommendation["budget_id"]; ok {
		t.Errorf("expected budget_id to be cleared, got %v", recommendation["budget_id"])
	}
}

func TestRecommendationFlow_DismissAndRestore(t *testing.T) {
	app := setupApp(t)
	ws := newWorkspace()

	accountID := app.createAccount(t, ws, "Checking")
	draft := fmt.Sprintf(`{"type":"create_budget","title":"Account cap","account_id":%q,"metadata":{"suggestedAmount":25000}}`, accountID)
	rec := app.pipelineRequest(http.MethodPost, "/api/v1/recommendations", draft, ws, pipelineKey)
	expectStatus(t, rec, http.StatusCreated)
	recID := object(t, parseJSON(t, rec), "recommendation")["id"].(string)

	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/recommendations/%s/dismiss", recID), "", ws)
	expectStatus(t, rec, http.StatusOK)
	if status := object(t, parseJSON(t, rec), "recommendation")["status"]; status != "dismissed" {
		t.Fatalf("expected dismissed, got %v", status)
	}

	// Dismissed recommendations cannot be applied
	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/recommendations/%s/apply", recID), "", ws)
	expectStatus(t, rec, http.StatusConflict)

	rec = app.request(http.MethodGet, "/api/v1/recommendations?status=dismissed", "", ws)
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"].(float64); total != 1 {
		t.Errorf("expected 1 dismissed recommendation, got %v", total)
	}

	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/recommendations/%s/restore", recID), "", ws)
	expectStatus(t, rec, http.StatusOK)
	if status := object(t, parseJSON(t, rec), "recommendation")["status"]; status != "pending" {
		t.Fatalf("expected pending, got %v", status)
	}

	// Restoring a pending recommendation is a conflict
	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/recommendations/%s/restore", recID), "", ws)
	expectStatus(t, rec, http.StatusConflict)
	expectErrorCode(t, rec, "RECOMMENDATION_NOT_DISMISSED")
}
