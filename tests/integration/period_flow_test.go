package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestPeriodFlow_CloseCarriesRollover(t *testing.T) {
	app := setupApp(t)
	ws := newWorkspace()

	accountID := app.createAccount(t, ws, "Checking")
	budgetID := app.createAccountBudget(t, ws, "Monthly", accountID, "warning", 10000)

	// Materialize January
	rec := app.request(http.MethodGet, fmt.Sprintf("/api/v1/budgets/%s/periods/current?date=2024-01-15", budgetID), "", ws)
	expectStatus(t, rec, http.StatusOK)
	january := object(t, parseJSON(t, rec), "period")
	if january["start_date"] != "2024-01-01" || january["end_date"] != "2024-01-31" {
		t.Fatalf("unexpected January bounds: %v", january)
	}

	// Spend $30 in January
	app.createTransaction(t, ws, accountID, -3000, "2024-01-10")

	// Close January; February gets the unspent $70 on top of its allocation
	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/periods/%s/close", january["id"]), "", ws)
	expectStatus(t, rec, http.StatusOK)
	february := object(t, parseJSON(t, rec), "next_period")
	if february["start_date"] != "2024-02-01" || february["end_date"] != "2024-02-29" {
		t.Errorf("unexpected February bounds: %v", february)
	}
	if february["rollover_amount"].(float64) != 7000 {
		t.Errorf("expected rollover 7000, got %v", february["rollover_amount"])
	}
	if february["allocated_amount"].(float64) != 10000 {
		t.Errorf("expected allocation 10000, got %v", february["allocated_amount"])
	}

	// January's actual is recomputed from its allocations
	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/budgets/%s/periods/%s/recalculate", budgetID, january["id"]), "", ws)
	expectStatus(t, rec, http.StatusOK)
	if actual := parseJSON(t, rec)["actual_amount"].(float64); actual != 3000 {
		t.Errorf("expected actual 3000, got %v", actual)
	}

	rec = app.request(http.MethodGet, fmt.Sprintf("/api/v1/budgets/%s/periods", budgetID), "", ws)
	expectStatus(t, rec, http.StatusOK)
	if total := parseJSON(t, rec)["total_items"].(float64); total != 2 {
		t.Errorf("expected 2 periods, got %v", total)
	}
}

func TestPeriodFlow_OverlappingPeriodRejected(t *testing.T) {
	app := setupApp(t)
	ws := newWorkspace()

	accountID := app.createAccount(t, ws, "Checking")
	budgetID := app.createAccountBudget(t, ws, "Custom", accountID, "warning", 10000)

	rec := app.request(http.MethodPost, fmt.Sprintf("/api/v1/budgets/%s/periods", budgetID),
		`{"start_date":"2024-03-01","end_date":"2024-03-31"}`, ws)
	expectStatus(t, rec, http.StatusCreated)

	rec = app.request(http.MethodPost, fmt.Sprintf("/api/v1/budgets/%s/periods", budgetID),
		`{"start_date":"2024-03-15","end_date":"2024-04-14"}`, ws)
	expectStatus(t, rec, http.StatusConflict)
	expectErrorCode(t, rec, "PERIOD_OVERLAP")
}
