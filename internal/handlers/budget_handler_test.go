package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
	"budgetcore/internal/services"
)

type budgetDeps struct {
	budgets      *mockBudgetService
	associations *mockAssociationService
	enforcement  *mockEnforcementService
	allocations  *mockAllocationService
	audit        *mockAuditService
}

func newBudgetDeps() *budgetDeps {
	return &budgetDeps{
		budgets:      &mockBudgetService{},
		associations: &mockAssociationService{},
		enforcement:  &mockEnforcementService{},
		allocations:  &mockAllocationService{},
		audit:        &mockAuditService{},
	}
}

func setupBudgetRouter(d *budgetDeps) *gin.Engine {
	handler := NewBudgetHandler(d.budgets, d.associations, d.enforcement, d.allocations, d.audit)
	r := newTestRouter()
	r.POST("/budgets", handler.CreateBudget)
	r.GET("/budgets", handler.GetBudgets)
	r.GET("/budgets/applicable", handler.GetApplicableBudgets)
	r.GET("/budgets/:id", handler.GetBudget)
	r.PUT("/budgets/:id", handler.UpdateBudget)
	r.PUT("/budgets/:id/status", handler.SetBudgetStatus)
	r.DELETE("/budgets/:id", handler.DeleteBudget)
	r.PUT("/budgets/:id/accounts", handler.SyncAccounts)
	r.PUT("/budgets/:id/categories", handler.SyncCategories)
	r.GET("/budgets/:id/progress", handler.GetBudgetProgress)
	r.POST("/budgets/:id/check", handler.CheckAllocation)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		d := newBudgetDeps()
		var got services.CreateBudgetInput
		d.budgets.createBudgetFn = func(workspaceID string, in services.CreateBudgetInput) (*models.Budget, error) {
			if workspaceID != testWorkspaceID {
				t.Errorf("expected workspace %s, got %s", testWorkspaceID, workspaceID)
			}
			got = in
			return &models.Budget{Base: models.Base{ID: testID}, Name: in.Name, Type: in.Type, EnforcementLevel: models.EnforcementStrict}, nil
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "POST", "/budgets", `{
			"name":"Groceries","type":"category-envelope","enforcement_level":"strict",
			"period":{"type":"monthly","start_day_of_month":15,"allocated_amount":50000},
			"category_ids":["`+testID+`"]
		}`)

		assertStatus(t, rec, http.StatusCreated)
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["name"] != "Groceries" {
			t.Errorf("expected Groceries, got %v", budget["name"])
		}
		if got.Period.Type != models.PeriodMonthly || got.Period.StartDayOfMonth != 15 || got.Period.AllocatedAmount != 50000 {
			t.Errorf("unexpected period input: %+v", got.Period)
		}
		if len(got.CategoryIDs) != 1 {
			t.Errorf("expected 1 category, got %d", len(got.CategoryIDs))
		}
		d.audit.assertLogged(t, "CREATE_BUDGET")
	})

	t.Run("period is optional", func(t *testing.T) {
		d := newBudgetDeps()
		var got services.CreateBudgetInput
		d.budgets.createBudgetFn = func(_ string, in services.CreateBudgetInput) (*models.Budget, error) {
			got = in
			return &models.Budget{Name: in.Name}, nil
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "POST", "/budgets", `{"name":"Rent","type":"account-monthly"}`)

		assertStatus(t, rec, http.StatusCreated)
		if got.Period.Type != "" {
			t.Errorf("expected empty period input, got %+v", got.Period)
		}
	})

	t.Run("returns 400 on bad input", func(t *testing.T) {
		tests := map[string]string{
			"missing_name":     `{"type":"account-monthly"}`,
			"unknown_type":     `{"name":"X","type":"envelope"}`,
			"unknown_level":    `{"name":"X","type":"account-monthly","enforcement_level":"hard"}`,
			"unknown_period":   `{"name":"X","type":"account-monthly","period":{"type":"daily"}}`,
			"bad_category_id":  `{"name":"X","type":"account-monthly","category_ids":["nope"]}`,
			"bad_account_type": `{"name":"X","type":"account-monthly","accounts":[{"account_id":"` + testID + `","association_type":"other"}]}`,
		}
		for name, body := range tests {
			t.Run(name, func(t *testing.T) {
				r := setupBudgetRouter(newBudgetDeps())
				rec := doRequest(r, "POST", "/budgets", body)
				assertStatus(t, rec, http.StatusBadRequest)
				assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
			})
		}
	})

	t.Run("returns 409 on duplicate association", func(t *testing.T) {
		d := newBudgetDeps()
		d.budgets.createBudgetFn = func(string, services.CreateBudgetInput) (*models.Budget, error) {
			return nil, apperrors.ErrDuplicateAssociation
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "POST", "/budgets", `{"name":"X","type":"account-monthly"}`)

		assertStatus(t, rec, http.StatusConflict)
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_ASSOCIATION")
	})
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("passes filters", func(t *testing.T) {
		d := newBudgetDeps()
		d.budgets.getBudgetsFn = func(_ string, page pagination.PageRequest, filter services.BudgetFilter) (*pagination.PageResponse[models.Budget], error) {
			if filter.Status == nil || *filter.Status != models.BudgetStatusActive {
				t.Errorf("expected active status filter, got %v", filter.Status)
			}
			if filter.Type == nil || *filter.Type != models.BudgetTypeGoalBased {
				t.Errorf("expected goal-based type filter, got %v", filter.Type)
			}
			if page.Page != 2 {
				t.Errorf("expected page 2, got %d", page.Page)
			}
			resp := pagination.NewPageResponse([]models.Budget{{Name: "A"}}, 2, 20, 21)
			return &resp, nil
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "GET", "/budgets?status=active&type=goal-based&page=2", "")

		assertStatus(t, rec, http.StatusOK)
		if parseJSON(t, rec)["total_items"].(float64) != 21 {
			t.Error("expected total_items 21")
		}
	})

	t.Run("returns 400 on bad page size", func(t *testing.T) {
		r := setupBudgetRouter(newBudgetDeps())
		rec := doRequest(r, "GET", "/budgets?page_size=500", "")
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		d := newBudgetDeps()
		d.budgets.getBudgetByIDFn = func(string, string) (*models.Budget, error) {
			return nil, apperrors.ErrBudgetNotFound
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "GET", "/budgets/"+testID, "")

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupBudgetRouter(newBudgetDeps())
		rec := doRequest(r, "GET", "/budgets/42", "")
		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	t.Run("only sends provided fields", func(t *testing.T) {
		d := newBudgetDeps()
		d.budgets.updateBudgetFn = func(_, budgetID string, in services.UpdateBudgetInput) (*models.Budget, error) {
			if in.Name != nil || in.Metadata != nil {
				t.Errorf("expected name and metadata unchanged, got %+v", in)
			}
			if in.EnforcementLevel == nil || *in.EnforcementLevel != models.EnforcementNone {
				t.Errorf("expected enforcement none, got %v", in.EnforcementLevel)
			}
			if in.AllocatedAmount == nil || *in.AllocatedAmount != 0 {
				t.Errorf("expected allocated amount 0, got %v", in.AllocatedAmount)
			}
			return &models.Budget{Base: models.Base{ID: budgetID}}, nil
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "PUT", "/budgets/"+testID, `{"enforcement_level":"none","allocated_amount":0}`)

		assertStatus(t, rec, http.StatusOK)
		d.audit.assertLogged(t, "UPDATE_BUDGET")
	})

	t.Run("rejects negative allocation", func(t *testing.T) {
		r := setupBudgetRouter(newBudgetDeps())
		rec := doRequest(r, "PUT", "/budgets/"+testID, `{"allocated_amount":-1}`)
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestBudgetHandler_SetBudgetStatus(t *testing.T) {
	t.Run("archives budget", func(t *testing.T) {
		d := newBudgetDeps()
		r := setupBudgetRouter(d)

		rec := doRequest(r, "PUT", "/budgets/"+testID+"/status", `{"status":"archived"}`)

		assertStatus(t, rec, http.StatusOK)
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["status"] != "archived" {
			t.Errorf("expected archived, got %v", budget["status"])
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		r := setupBudgetRouter(newBudgetDeps())
		rec := doRequest(r, "PUT", "/budgets/"+testID+"/status", `{"status":"paused"}`)
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	d := newBudgetDeps()
	deleted := ""
	d.budgets.deleteBudgetFn = func(_, budgetID string) error {
		deleted = budgetID
		return nil
	}
	r := setupBudgetRouter(d)

	rec := doRequest(r, "DELETE", "/budgets/"+testID, "")

	assertStatus(t, rec, http.StatusOK)
	if deleted != testID {
		t.Errorf("expected %s deleted, got %q", testID, deleted)
	}
	d.audit.assertLogged(t, "DELETE_BUDGET")
}

func TestBudgetHandler_SyncAssociations(t *testing.T) {
	t.Run("accounts", func(t *testing.T) {
		d := newBudgetDeps()
		d.associations.syncAccountsFn = func(_, budgetID string, accounts []services.AccountAssociation) ([]models.BudgetAccount, error) {
			if len(accounts) != 1 || accounts[0].AssociationType != models.AssociationSource {
				t.Errorf("unexpected accounts: %+v", accounts)
			}
			return []models.BudgetAccount{{BudgetID: budgetID, AccountID: accounts[0].AccountID}}, nil
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "PUT", "/budgets/"+testID+"/accounts",
			`{"accounts":[{"account_id":"`+testID+`","association_type":"source"}]}`)

		assertStatus(t, rec, http.StatusOK)
		if len(parseJSON(t, rec)["accounts"].([]interface{})) != 1 {
			t.Error("expected 1 account association")
		}
		d.audit.assertLogged(t, "SYNC_BUDGET_ACCOUNTS")
	})

	t.Run("categories empty list clears", func(t *testing.T) {
		d := newBudgetDeps()
		called := false
		d.associations.syncCategoriesFn = func(_, _ string, categoryIDs []string) ([]models.BudgetCategory, error) {
			called = true
			if len(categoryIDs) != 0 {
				t.Errorf("expected no categories, got %v", categoryIDs)
			}
			return []models.BudgetCategory{}, nil
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "PUT", "/budgets/"+testID+"/categories", `{"category_ids":[]}`)

		assertStatus(t, rec, http.StatusOK)
		if !called {
			t.Error("expected SyncCategories to be called")
		}
	})

	t.Run("categories not found", func(t *testing.T) {
		d := newBudgetDeps()
		d.associations.syncCategoriesFn = func(string, string, []string) ([]models.BudgetCategory, error) {
			return nil, apperrors.ErrCategoryNotFound
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "PUT", "/budgets/"+testID+"/categories", `{"category_ids":["`+testID+`"]}`)

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestBudgetHandler_GetBudgetProgress(t *testing.T) {
	d := newBudgetDeps()
	d.budgets.getBudgetProgressFn = func(_, budgetID string) (*services.BudgetProgress, error) {
		return &services.BudgetProgress{
			BudgetID:    budgetID,
			Allocated:   1000,
			Spent:       750,
			Remaining:   250,
			Percentage:  75,
			Utilization: services.UtilizationWarning,
		}, nil
	}
	r := setupBudgetRouter(d)

	rec := doRequest(r, "GET", "/budgets/"+testID+"/progress", "")

	assertStatus(t, rec, http.StatusOK)
	progress := parseJSON(t, rec)["progress"].(map[string]interface{})
	if progress["percentage"].(float64) != 75 {
		t.Errorf("expected 75%%, got %v", progress["percentage"])
	}
	if progress["utilization"] != string(services.UtilizationWarning) {
		t.Errorf("expected warning utilization, got %v", progress["utilization"])
	}
}

func TestBudgetHandler_CheckAllocation(t *testing.T) {
	t.Run("returns decision", func(t *testing.T) {
		d := newBudgetDeps()
		d.enforcement.checkAllocationFn = func(_, budgetID string, amount int64, date string) (*services.EnforcementResult, error) {
			if amount != 1500 || date != "2024-01-10" {
				t.Errorf("unexpected check args: %d %s", amount, date)
			}
			return &services.EnforcementResult{BudgetID: budgetID, Decision: services.DecisionBlock, Remaining: 1000}, nil
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "POST", "/budgets/"+testID+"/check", `{"amount":1500,"date":"2024-01-10"}`)

		assertStatus(t, rec, http.StatusOK)
		result := parseJSON(t, rec)["enforcement"].(map[string]interface{})
		if result["decision"] != "block" {
			t.Errorf("expected block, got %v", result["decision"])
		}
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		r := setupBudgetRouter(newBudgetDeps())
		rec := doRequest(r, "POST", "/budgets/"+testID+"/check", `{"amount":1500,"date":"2024-13-01"}`)
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestBudgetHandler_GetApplicableBudgets(t *testing.T) {
	t.Run("resolves by account and category", func(t *testing.T) {
		d := newBudgetDeps()
		d.allocations.findApplicableFn = func(_ string, accountID, categoryID *string) ([]string, error) {
			if accountID == nil || *accountID != testID {
				t.Errorf("expected account %s, got %v", testID, accountID)
			}
			if categoryID != nil {
				t.Errorf("expected no category, got %v", *categoryID)
			}
			return []string{"b1", "b2"}, nil
		}
		r := setupBudgetRouter(d)

		rec := doRequest(r, "GET", "/budgets/applicable?account_id="+testID, "")

		assertStatus(t, rec, http.StatusOK)
		ids := parseJSON(t, rec)["budget_ids"].([]interface{})
		if len(ids) != 2 || ids[0] != "b1" {
			t.Errorf("expected [b1 b2], got %v", ids)
		}
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		r := setupBudgetRouter(newBudgetDeps())
		rec := doRequest(r, "GET", "/budgets/applicable?category_id=abc", "")
		assertStatus(t, rec, http.StatusBadRequest)
	})
}
