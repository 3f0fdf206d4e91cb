package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
	"budgetcore/internal/services"
)

func setupAllocationRouter(allocations *mockAllocationService, audit *mockAuditService) *gin.Engine {
	handler := NewAllocationHandler(allocations, audit)
	r := newTestRouter()
	r.POST("/allocations", handler.CreateAllocation)
	r.POST("/allocations/split", handler.SplitTransaction)
	r.DELETE("/allocations/:id", handler.DeleteAllocation)
	r.GET("/transactions/:id/allocations", handler.GetTransactionAllocations)
	r.POST("/transactions/:id/auto-assign", handler.AutoAssign)
	return r
}

func TestAllocationHandler_CreateAllocation(t *testing.T) {
	t.Run("manual allocation", func(t *testing.T) {
		allocations := &mockAllocationService{
			allocateFn: func(_ string, req services.AllocationRequest) (*services.AllocationResult, error) {
				if req.AssignedBy != models.AssignedManual {
					t.Errorf("expected manual assignment, got %s", req.AssignedBy)
				}
				return &services.AllocationResult{
					Allocation:  &models.BudgetTransaction{Base: models.Base{ID: testID}, BudgetID: req.BudgetID, AllocatedAmount: req.Amount},
					Enforcement: &services.EnforcementResult{Decision: services.DecisionWarn},
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAllocationRouter(allocations, audit)

		rec := doRequest(r, "POST", "/allocations",
			`{"transaction_id":"`+testID+`","budget_id":"`+testID+`","amount":2500}`)

		assertStatus(t, rec, http.StatusCreated)
		body := parseJSON(t, rec)
		if body["enforcement"].(map[string]interface{})["decision"] != "warn" {
			t.Errorf("expected warn decision, got %v", body["enforcement"])
		}
		audit.assertLogged(t, "CREATE_ALLOCATION")
	})

	t.Run("strict block returns 422", func(t *testing.T) {
		allocations := &mockAllocationService{
			allocateFn: func(string, services.AllocationRequest) (*services.AllocationResult, error) {
				return nil, apperrors.ErrBudgetExceeded
			},
		}
		audit := &mockAuditService{}
		r := setupAllocationRouter(allocations, audit)

		rec := doRequest(r, "POST", "/allocations",
			`{"transaction_id":"`+testID+`","budget_id":"`+testID+`","amount":2500}`)

		assertStatus(t, rec, http.StatusUnprocessableEntity)
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_EXCEEDED")
		if len(audit.calls) != 0 {
			t.Errorf("expected no audit entry, got %+v", audit.calls)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		r := setupAllocationRouter(&mockAllocationService{}, &mockAuditService{})
		rec := doRequest(r, "POST", "/allocations",
			`{"transaction_id":"`+testID+`","budget_id":"`+testID+`","amount":-5}`)
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestAllocationHandler_SplitTransaction(t *testing.T) {
	t.Run("passes legs through", func(t *testing.T) {
		allocations := &mockAllocationService{
			splitFn: func(_, _ string, splits []services.SplitAllocation) ([]services.AllocationResult, error) {
				if len(splits) != 2 || splits[1].Amount != 300 {
					t.Errorf("unexpected splits %+v", splits)
				}
				return make([]services.AllocationResult, len(splits)), nil
			},
		}
		r := setupAllocationRouter(allocations, &mockAuditService{})

		rec := doRequest(r, "POST", "/allocations/split", `{"transaction_id":"`+testID+`","splits":[
			{"budget_id":"`+testID+`","amount":700},
			{"budget_id":"0190a4f2-8000-7000-8000-000000000002","amount":300}
		]}`)

		assertStatus(t, rec, http.StatusCreated)
		if len(parseJSON(t, rec)["allocations"].([]interface{})) != 2 {
			t.Error("expected 2 allocations")
		}
	})

	t.Run("rejects empty splits", func(t *testing.T) {
		r := setupAllocationRouter(&mockAllocationService{}, &mockAuditService{})
		rec := doRequest(r, "POST", "/allocations/split", `{"transaction_id":"`+testID+`","splits":[]}`)
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestAllocationHandler_DeleteAllocation(t *testing.T) {
	allocations := &mockAllocationService{
		removeAllocationFn: func(string, string) error { return apperrors.ErrAllocationNotFound },
	}
	r := setupAllocationRouter(allocations, &mockAuditService{})

	rec := doRequest(r, "DELETE", "/allocations/"+testID, "")

	assertStatus(t, rec, http.StatusNotFound)
	assertErrorCode(t, parseJSON(t, rec), "ALLOCATION_NOT_FOUND")
}

func TestAllocationHandler_GetTransactionAllocations(t *testing.T) {
	allocations := &mockAllocationService{
		listFn: func(string, string) ([]models.BudgetTransaction, error) {
			return []models.BudgetTransaction{{AllocatedAmount: 600}}, nil
		},
		coverageFn: func(_, transactionID string) (*services.AllocationCoverage, error) {
			return &services.AllocationCoverage{TransactionID: transactionID, TransactionAmount: 1000, Allocated: 600, Unallocated: 400, Status: services.CoverageUnder}, nil
		},
	}
	r := setupAllocationRouter(allocations, &mockAuditService{})

	rec := doRequest(r, "GET", "/transactions/"+testID+"/allocations", "")

	assertStatus(t, rec, http.StatusOK)
	coverage := parseJSON(t, rec)["coverage"].(map[string]interface{})
	if coverage["status"] != "under" {
		t.Errorf("expected under coverage, got %v", coverage["status"])
	}
}

func TestAllocationHandler_AutoAssign(t *testing.T) {
	t.Run("ambiguous is not audited", func(t *testing.T) {
		allocations := &mockAllocationService{
			autoAssignFn: func(string, string) (*services.AutoAssignResult, error) {
				return &services.AutoAssignResult{Candidates: []string{"a", "b"}, Ambiguous: true}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAllocationRouter(allocations, audit)

		rec := doRequest(r, "POST", "/transactions/"+testID+"/auto-assign", "")

		assertStatus(t, rec, http.StatusOK)
		if !parseJSON(t, rec)["assignment"].(map[string]interface{})["ambiguous"].(bool) {
			t.Error("expected ambiguous assignment")
		}
		if len(audit.calls) != 0 {
			t.Errorf("expected no audit entry, got %+v", audit.calls)
		}
	})
}
