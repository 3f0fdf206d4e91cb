package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/pagination"
	"budgetcore/internal/services"
)

// PeriodHandler handles budget period requests.
type PeriodHandler struct {
	periodService     services.PeriodServicer
	allocationService services.AllocationServicer
	auditService      services.AuditServicer
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(periodService services.PeriodServicer, allocationService services.AllocationServicer, auditService services.AuditServicer) *PeriodHandler {
	return &PeriodHandler{periodService: periodService, allocationService: allocationService, auditService: auditService}
}

// CreatePeriodRequest represents an explicitly dated period. Allocated defaults
// to the template's amount and Rollover to the carry-over from the previous period.
type CreatePeriodRequest struct {
	StartDate string `json:"start_date" binding:"required,iso_date"`
	EndDate   string `json:"end_date" binding:"required,iso_date"`
	Allocated *int64 `json:"allocated_amount" binding:"omitempty,min=0"`
	Rollover  *int64 `json:"rollover_amount"`
}

// ListPeriods handles listing a budget's period instances.
// @Summary     List budget periods
// @Description Get a paginated list of a budget's periods, newest first
// @Tags        periods
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       id             path   string true  "Budget ID"
// @Param       page           query  int    false "Page number (default 1)"
// @Param       page_size      query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BudgetPeriodInstance] "Paginated periods"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/periods [get]
func (h *PeriodHandler) ListPeriods(c *gin.Context) {
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

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.periodService.ListInstances(workspaceID, budgetID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreatePeriod handles creating an explicitly dated period instance.
// @Summary     Create a budget period
// @Description Create a period instance that must not overlap an existing one
// @Tags        periods
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string              true "Workspace ID"
// @Param       id             path   string              true "Budget ID"
// @Param       request        body   CreatePeriodRequest true "Period bounds"
// @Success     201 {object} models.BudgetPeriodInstance "Period created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     409 {object} ErrorResponse "Period overlaps an existing period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/periods [post]
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
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

	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	bounds := services.PeriodBoundaries{StartDate: req.StartDate, EndDate: req.EndDate}
	period, err := h.periodService.CreatePeriodInstance(workspaceID, budgetID, bounds, req.Allocated, req.Rollover)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "CREATE_PERIOD", "budget_period", period.ID, c.ClientIP(),
		map[string]interface{}{"budget_id": budgetID, "start_date": period.StartDate, "end_date": period.EndDate})

	c.JSON(http.StatusCreated, gin.H{"period": period})
}

// GetCurrentPeriod handles resolving the period covering a date, creating it
// from the template when needed.
// @Summary     Get the period covering a date
// @Description Resolve (and create if missing) the period covering the date
// @Tags        periods
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Budget ID"
// @Param       date           query  string true "Date (YYYY-MM-DD)"
// @Success     200 {object} models.BudgetPeriodInstance "Covering period"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/periods/current [get]
func (h *PeriodHandler) GetCurrentPeriod(c *gin.Context) {
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

	date := c.Query("date")
	if date == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required"))
		return
	}

	period, err := h.periodService.EnsureInstance(workspaceID, budgetID, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period})
}

// GetPeriod handles retrieving a single period instance.
// @Summary     Get period by ID
// @Tags        periods
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Period ID"
// @Success     200 {object} models.BudgetPeriodInstance "Period details"
// @Failure     400 {object} ErrorResponse "Invalid period ID"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/{id} [get]
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	periodID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := h.periodService.GetInstance(workspaceID, periodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period})
}

// ClosePeriod handles closing a period and carrying its balance forward.
// @Summary     Close a period
// @Description Recalculate the period's actual spending and carry the remainder into the next period
// @Tags        periods
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Period ID"
// @Success     200 {object} models.BudgetPeriodInstance "Next period"
// @Failure     400 {object} ErrorResponse "Invalid period ID"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/{id}/close [post]
func (h *PeriodHandler) ClosePeriod(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	periodID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	next, err := h.periodService.ClosePeriod(workspaceID, periodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "CLOSE_PERIOD", "budget_period", periodID, c.ClientIP(),
		map[string]interface{}{"next_period_id": next.ID, "rollover_amount": next.RolloverAmount})

	c.JSON(http.StatusOK, gin.H{"next_period": next})
}

// RecalculatePeriod handles recomputing a period's actual spending from its allocations.
// @Summary     Recalculate period actual
// @Tags        periods
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Budget ID"
// @Param       periodId       path   string true "Period ID"
// @Success     200 {object} map[string]int64 "Recomputed actual amount"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/periods/{periodId}/recalculate [post]
func (h *PeriodHandler) RecalculatePeriod(c *gin.Context) {
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
	periodID, err := parsePathID(c, "periodId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	actual, err := h.allocationService.RecalculateActual(workspaceID, budgetID, periodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period_id": periodID, "actual_amount": actual})
}
