package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
	"budgetcore/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name     string             `json:"name" binding:"required,min=1,max=100"`
	Type     models.AccountType `json:"type" binding:"omitempty,account_type"`
	Currency string             `json:"currency" binding:"omitempty,iso4217"`
}

// CreateAccount handles the creation of a new account
// @Summary     Create an account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string               true "Workspace ID"
// @Param       request        body   CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	account, err := h.accountService.CreateAccount(workspaceID, req.Name, req.Type, req.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "CREATE_ACCOUNT", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": account.Name, "type": account.Type, "currency": account.Currency})

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts handles listing the workspace's accounts
// @Summary     Get accounts
// @Tags        accounts
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       page           query  int    false "Page number (default 1)"
// @Param       page_size      query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Account] "Paginated accounts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.accountService.GetWorkspaceAccounts(workspaceID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccount handles retrieving a specific account
// @Summary     Get account by ID
// @Tags        accounts
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Account ID"
// @Success     200 {object} models.Account "Account details"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(workspaceID, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}
