package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgetcore/internal/models"
	"budgetcore/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount is signed: negative for spending, positive for income.
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
	PayeeID     *string `json:"payee_id" binding:"omitempty,uuid"`
	Amount      int64   `json:"amount" binding:"required,ne=0"`
	Description string  `json:"description" binding:"max=500"`
	Date        string  `json:"date" binding:"omitempty,iso_date"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Store a transaction and assign it to its budget when exactly one applies. A strict budget that would be exceeded rejects the whole entry.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string                   true "Workspace ID"
// @Param       request        body   CreateTransactionRequest true "Transaction details"
// @Success     201 {object} services.TransactionResult "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account, category or payee not found"
// @Failure     422 {object} ErrorResponse "Budget exceeded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(models.DateLayout)
	}

	result, err := h.transactionService.CreateTransaction(workspaceID, services.CreateTransactionInput{
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		PayeeID:     req.PayeeID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"account_id": req.AccountID, "amount": req.Amount, "date": date}
	if result.Assignment != nil && result.Assignment.Result != nil {
		changes["budget_id"] = result.Assignment.Result.Allocation.BudgetID
	}
	h.auditService.Log(workspaceID, "CREATE_TRANSACTION", "transaction", result.Transaction.ID, c.ClientIP(), changes)

	c.JSON(http.StatusCreated, result)
}

// GetTransaction handles retrieving a specific transaction.
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
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

	transaction, err := h.transactionService.GetTransactionByID(workspaceID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction and its allocations.
// @Summary     Delete transaction
// @Description Delete a transaction; allocations are removed and period actuals recomputed
// @Tags        transactions
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Transaction ID"
// @Success     200 {object} map[string]string "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
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

	if err := h.transactionService.DeleteTransaction(workspaceID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
