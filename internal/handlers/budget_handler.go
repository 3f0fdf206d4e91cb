package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
	"budgetcore/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService      services.BudgetServicer
	associationService services.AssociationServicer
	enforcementService services.EnforcementServicer
	allocationService  services.AllocationServicer
	auditService       services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(
	budgetService services.BudgetServicer,
	associationService services.AssociationServicer,
	enforcementService services.EnforcementServicer,
	allocationService services.AllocationServicer,
	auditService services.AuditServicer,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService:      budgetService,
		associationService: associationService,
		enforcementService: enforcementService,
		allocationService:  allocationService,
		auditService:       auditService,
	}
}

// CreateBudgetRequest represents the request payload for creating a budget.
// Period defaults to a monthly template starting on the 1st.
type CreateBudgetRequest struct {
	Name             string                        `json:"name" binding:"required,min=1,max=100"`
	Type             models.BudgetType             `json:"type" binding:"required,budget_type"`
	Scope            models.BudgetScope            `json:"scope" binding:"omitempty,budget_scope"`
	EnforcementLevel models.EnforcementLevel       `json:"enforcement_level" binding:"omitempty,enforcement_level"`
	Metadata         models.BudgetMetadata         `json:"metadata"`
	Period           *services.PeriodTemplateInput `json:"period"`
	Accounts         []services.AccountAssociation `json:"accounts" binding:"omitempty,dive"`
	CategoryIDs      []string                      `json:"category_ids" binding:"omitempty,dive,uuid"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Name             *string                  `json:"name" binding:"omitempty,min=1,max=100"`
	EnforcementLevel *models.EnforcementLevel `json:"enforcement_level" binding:"omitempty,enforcement_level"`
	Metadata         *models.BudgetMetadata   `json:"metadata"`
	AllocatedAmount  *int64                   `json:"allocated_amount" binding:"omitempty,min=0"`
}

// SetBudgetStatusRequest represents the request payload for changing a budget's status.
type SetBudgetStatusRequest struct {
	Status models.BudgetStatus `json:"status" binding:"required,budget_status"`
}

// SyncAccountsRequest replaces a budget's account associations.
type SyncAccountsRequest struct {
	Accounts []services.AccountAssociation `json:"accounts" binding:"dive"`
}

// SyncCategoriesRequest replaces a budget's category associations.
type SyncCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids" binding:"dive,uuid"`
}

// CheckAllocationRequest asks whether an amount could be allocated on a date.
type CheckAllocationRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Date   string `json:"date" binding:"required,iso_date"`
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a budget with its period template and associations
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string              true "Workspace ID"
// @Param       request        body   CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account or category not found"
// @Failure     409 {object} ErrorResponse "Duplicate association"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	in := services.CreateBudgetInput{
		Name:             req.Name,
		Type:             req.Type,
		Scope:            req.Scope,
		EnforcementLevel: req.EnforcementLevel,
		Metadata:         req.Metadata,
		Accounts:         req.Accounts,
		CategoryIDs:      req.CategoryIDs,
	}
	if req.Period != nil {
		in.Period = *req.Period
	}

	budget, err := h.budgetService.CreateBudget(workspaceID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "CREATE_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"name": budget.Name, "type": budget.Type, "enforcement_level": budget.EnforcementLevel})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing the workspace's budgets.
// @Summary     Get budgets
// @Description Get a paginated list of budgets
// @Tags        budgets
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       status    query string false "Filter by status (active/inactive/archived)"
// @Param       type      query string false "Filter by budget type"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Budget] "Paginated budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
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

	var filter services.BudgetFilter
	if v := c.Query("status"); v != "" {
		status := models.BudgetStatus(v)
		filter.Status = &status
	}
	if v := c.Query("type"); v != "" {
		budgetType := models.BudgetType(v)
		filter.Type = &budgetType
	}

	result, err := h.budgetService.GetWorkspaceBudgets(workspaceID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBudget handles retrieving a specific budget.
// @Summary     Get budget by ID
// @Description Get a budget with its template and associations
// @Tags        budgets
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(workspaceID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles updating an existing budget.
// @Summary     Update budget
// @Description Update a budget's name, enforcement level, metadata or allocation
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string              true "Workspace ID"
// @Param       id             path   string              true "Budget ID"
// @Param       request        body   UpdateBudgetRequest true "Updated budget details"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	budget, err := h.budgetService.UpdateBudget(workspaceID, budgetID, services.UpdateBudgetInput{
		Name:             req.Name,
		EnforcementLevel: req.EnforcementLevel,
		Metadata:         req.Metadata,
		AllocatedAmount:  req.AllocatedAmount,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.EnforcementLevel != nil {
		changes["enforcement_level"] = *req.EnforcementLevel
	}
	if req.AllocatedAmount != nil {
		changes["allocated_amount"] = *req.AllocatedAmount
	}
	if req.Metadata != nil {
		changes["metadata"] = *req.Metadata
	}
	h.auditService.Log(workspaceID, "UPDATE_BUDGET", "budget", budgetID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// SetBudgetStatus handles activating, deactivating or archiving a budget.
// @Summary     Set budget status
// @Description Inactive and archived budgets are not enforced
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string                 true "Workspace ID"
// @Param       id             path   string                 true "Budget ID"
// @Param       request        body   SetBudgetStatusRequest true "New status"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/status [put]
func (h *BudgetHandler) SetBudgetStatus(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	budget, err := h.budgetService.SetBudgetStatus(workspaceID, budgetID, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "SET_BUDGET_STATUS", "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget and everything that hangs off it.
// @Summary     Delete budget
// @Description Delete a budget, its periods, associations and allocations. Recommendations applied to it return to pending.
// @Tags        budgets
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id path string true "Budget ID"
// @Success     200 {object} map[string]string "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(workspaceID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "DELETE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// SyncAccounts handles replacing a budget's account associations.
// @Summary     Replace budget accounts
// @Description Replace the accounts a budget applies to
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string              true "Workspace ID"
// @Param       id             path   string              true "Budget ID"
// @Param       request        body   SyncAccountsRequest true "Accounts"
// @Success     200 {array}  models.BudgetAccount "Current associations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget or account not found"
// @Failure     409 {object} ErrorResponse "Duplicate association"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/accounts [put]
func (h *BudgetHandler) SyncAccounts(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SyncAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	accounts, err := h.associationService.SyncAccounts(workspaceID, budgetID, req.Accounts)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "SYNC_BUDGET_ACCOUNTS", "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"accounts": len(accounts)})

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// SyncCategories handles replacing a budget's category associations.
// @Summary     Replace budget categories
// @Description Replace the categories a budget applies to
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string                true "Workspace ID"
// @Param       id             path   string                true "Budget ID"
// @Param       request        body   SyncCategoriesRequest true "Category IDs"
// @Success     200 {array}  models.BudgetCategory "Current associations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget or category not found"
// @Failure     409 {object} ErrorResponse "Duplicate association"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/categories [put]
func (h *BudgetHandler) SyncCategories(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SyncCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	categories, err := h.associationService.SyncCategories(workspaceID, budgetID, req.CategoryIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "SYNC_BUDGET_CATEGORIES", "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"categories": len(categories)})

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetBudgetProgress handles retrieving spending progress for the current period.
// @Summary     Get budget progress
// @Description Get spending vs budget for the period covering today
// @Tags        budgets
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id path string true "Budget ID"
// @Success     200 {object} services.BudgetProgress "Budget progress"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/progress [get]
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.budgetService.GetBudgetProgress(workspaceID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// CheckAllocation handles an enforcement pre-check without persisting anything.
// @Summary     Check a proposed allocation
// @Description Evaluate an amount against the budget's period covering the date
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string                 true "Workspace ID"
// @Param       id             path   string                 true "Budget ID"
// @Param       request        body   CheckAllocationRequest true "Proposed allocation"
// @Success     200 {object} services.EnforcementResult "Enforcement decision"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/check [post]
func (h *BudgetHandler) CheckAllocation(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CheckAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.enforcementService.CheckAllocation(workspaceID, budgetID, req.Amount, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"enforcement": result})
}

// GetApplicableBudgets handles resolving which budgets apply to an account/category pair.
// @Summary     Find applicable budgets
// @Description List active budgets linked to the account or category, in association order
// @Tags        budgets
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       account_id     query  string false "Account ID"
// @Param       category_id    query  string false "Category ID"
// @Success     200 {object} map[string][]string "Budget IDs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/applicable [get]
func (h *BudgetHandler) GetApplicableBudgets(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := optionalQueryID(c, "account_id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	categoryID, err := optionalQueryID(c, "category_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetIDs, err := h.allocationService.FindApplicableBudgets(workspaceID, accountID, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_ids": budgetIDs})
}
