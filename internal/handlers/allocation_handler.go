package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetcore/internal/models"
	"budgetcore/internal/services"
)

// AllocationHandler handles assigning transactions to budgets.
type AllocationHandler struct {
	allocationService services.AllocationServicer
	auditService      services.AuditServicer
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocationService services.AllocationServicer, auditService services.AuditServicer) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService, auditService: auditService}
}

// CreateAllocationRequest assigns (part of) a transaction to a budget.
type CreateAllocationRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	BudgetID      string `json:"budget_id" binding:"required,uuid"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// SplitTransactionRequest spreads a transaction over several budgets.
type SplitTransactionRequest struct {
	TransactionID string                     `json:"transaction_id" binding:"required,uuid"`
	Splits        []services.SplitAllocation `json:"splits" binding:"required,min=1,dive"`
}

// CreateAllocation handles a manual allocation.
// @Summary     Allocate a transaction to a budget
// @Description Enforcement runs first: a strict budget rejects amounts beyond what remains
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string                  true "Workspace ID"
// @Param       request        body   CreateAllocationRequest true "Allocation"
// @Success     201 {object} services.AllocationResult "Allocation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget or transaction not found"
// @Failure     422 {object} ErrorResponse "Budget exceeded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.allocationService.Allocate(workspaceID, services.AllocationRequest{
		TransactionID: req.TransactionID,
		BudgetID:      req.BudgetID,
		Amount:        req.Amount,
		AssignedBy:    models.AssignedManual,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "CREATE_ALLOCATION", "budget_transaction", result.Allocation.ID, c.ClientIP(),
		map[string]interface{}{"transaction_id": req.TransactionID, "budget_id": req.BudgetID, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"allocation": result.Allocation, "enforcement": result.Enforcement})
}

// SplitTransaction handles allocating one transaction across several budgets.
// @Summary     Split a transaction across budgets
// @Description All legs are stored or none are
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string                  true "Workspace ID"
// @Param       request        body   SplitTransactionRequest true "Split legs"
// @Success     201 {array}  services.AllocationResult "Allocations created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget or transaction not found"
// @Failure     422 {object} ErrorResponse "Budget exceeded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations/split [post]
func (h *AllocationHandler) SplitTransaction(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SplitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	results, err := h.allocationService.SplitTransaction(workspaceID, req.TransactionID, req.Splits)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "SPLIT_TRANSACTION", "transaction", req.TransactionID, c.ClientIP(),
		map[string]interface{}{"splits": len(req.Splits)})

	c.JSON(http.StatusCreated, gin.H{"allocations": results})
}

// DeleteAllocation handles removing a single allocation.
// @Summary     Remove an allocation
// @Tags        allocations
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Allocation ID"
// @Success     200 {object} map[string]string "Allocation removed"
// @Failure     400 {object} ErrorResponse "Invalid allocation ID"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations/{id} [delete]
func (h *AllocationHandler) DeleteAllocation(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	allocationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.allocationService.RemoveAllocation(workspaceID, allocationID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "DELETE_ALLOCATION", "budget_transaction", allocationID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Allocation removed successfully"})
}

// GetTransactionAllocations handles listing a transaction's allocations with its coverage.
// @Summary     List a transaction's allocations
// @Tags        allocations
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Transaction ID"
// @Success     200 {object} map[string]interface{} "Allocations and coverage"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id}/allocations [get]
func (h *AllocationHandler) GetTransactionAllocations(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	allocations, err := h.allocationService.ListTransactionAllocations(workspaceID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	coverage, err := h.allocationService.GetAllocationCoverage(workspaceID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocations": allocations, "coverage": coverage})
}

// AutoAssign handles re-running budget auto-assignment for a stored transaction.
// @Summary     Auto-assign a transaction
// @Description Allocate the transaction to its budget when exactly one applies
// @Tags        allocations
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Transaction ID"
// @Success     200 {object} services.AutoAssignResult "Assignment outcome"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     422 {object} ErrorResponse "Budget exceeded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id}/auto-assign [post]
func (h *AllocationHandler) AutoAssign(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.allocationService.AutoAssign(workspaceID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if result.Result != nil {
		h.auditService.Log(workspaceID, "AUTO_ASSIGN", "transaction", transactionID, c.ClientIP(),
			map[string]interface{}{"budget_id": result.Result.Allocation.BudgetID})
	}

	c.JSON(http.StatusOK, gin.H{"assignment": result})
}
