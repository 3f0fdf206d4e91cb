package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
	"budgetcore/internal/services"
)

// RecommendationHandler handles the recommendation lifecycle.
type RecommendationHandler struct {
	recommendationService services.RecommendationServicer
	auditService          services.AuditServicer
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService services.RecommendationServicer, auditService services.AuditServicer) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService, auditService: auditService}
}

// CreateRecommendation handles intake of a draft from the analysis pipeline.
// @Summary     Submit a recommendation
// @Description Store a pending recommendation. An equivalent pending one is returned instead of a duplicate.
// @Tags        recommendations
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string                       true "Workspace ID"
// @Param       X-API-Key      header string                       true "Pipeline API key"
// @Param       request        body   services.RecommendationDraft true "Draft"
// @Success     201 {object} models.BudgetRecommendation "Recommendation created"
// @Success     200 {object} models.BudgetRecommendation "Equivalent pending recommendation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommendations [post]
func (h *RecommendationHandler) CreateRecommendation(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var draft services.RecommendationDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	rec, created, err := h.recommendationService.CreateRecommendation(workspaceID, draft)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"recommendation": rec})
		return
	}

	h.auditService.Log(workspaceID, "CREATE_RECOMMENDATION", "budget_recommendation", rec.ID, c.ClientIP(),
		map[string]interface{}{"type": rec.Type, "priority": rec.Priority})

	c.JSON(http.StatusCreated, gin.H{"recommendation": rec})
}

// GetRecommendations handles listing recommendations.
// @Summary     List recommendations
// @Tags        recommendations
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       status         query  string false "Filter by status (pending/dismissed/applied/expired)"
// @Param       page           query  int    false "Page number (default 1)"
// @Param       page_size      query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BudgetRecommendation] "Paginated recommendations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
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

	var status *models.RecommendationStatus
	if v := c.Query("status"); v != "" {
		s := models.RecommendationStatus(v)
		switch s {
		case models.RecommendationPending, models.RecommendationDismissed, models.RecommendationApplied, models.RecommendationExpired:
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be one of pending, dismissed, applied, expired"))
			return
		}
		status = &s
	}

	result, err := h.recommendationService.ListRecommendations(workspaceID, status, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecommendation handles retrieving a single recommendation.
// @Summary     Get recommendation by ID
// @Tags        recommendations
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Recommendation ID"
// @Success     200 {object} models.BudgetRecommendation "Recommendation"
// @Failure     400 {object} ErrorResponse "Invalid recommendation ID"
// @Failure     404 {object} ErrorResponse "Recommendation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommendations/{id} [get]
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	rec, err := h.recommendationService.GetRecommendation(workspaceID, recID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendation": rec})
}

// DismissRecommendation handles dismissing a pending recommendation.
// @Summary     Dismiss a recommendation
// @Tags        recommendations
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Recommendation ID"
// @Success     200 {object} models.BudgetRecommendation "Dismissed recommendation"
// @Failure     404 {object} ErrorResponse "Recommendation not found"
// @Failure     409 {object} ErrorResponse "Recommendation is not pending"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommendations/{id}/dismiss [post]
func (h *RecommendationHandler) DismissRecommendation(c *gin.Context) {
	h.transition(c, "DISMISS_RECOMMENDATION", h.recommendationService.DismissRecommendation)
}

// RestoreRecommendation handles returning a dismissed recommendation to pending.
// @Summary     Restore a recommendation
// @Tags        recommendations
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Recommendation ID"
// @Success     200 {object} models.BudgetRecommendation "Restored recommendation"
// @Failure     404 {object} ErrorResponse "Recommendation not found"
// @Failure     409 {object} ErrorResponse "Recommendation is not dismissed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommendations/{id}/restore [post]
func (h *RecommendationHandler) RestoreRecommendation(c *gin.Context) {
	h.transition(c, "RESTORE_RECOMMENDATION", h.recommendationService.RestoreRecommendation)
}

func (h *RecommendationHandler) transition(c *gin.Context, action string, fn func(workspaceID, recommendationID string) (*models.BudgetRecommendation, error)) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	rec, err := fn(workspaceID, recID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, action, "budget_recommendation", recID, c.ClientIP(),
		map[string]interface{}{"status": rec.Status})

	c.JSON(http.StatusOK, gin.H{"recommendation": rec})
}

// ApplyRecommendation handles turning a pending recommendation into a budget.
// @Summary     Apply a recommendation
// @Description Create the recommended budget (and schedule for recurring expenses) and link detected transactions
// @Tags        recommendations
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Recommendation ID"
// @Success     201 {object} services.ApplyResult "Created budget, schedule and allocations"
// @Failure     400 {object} ErrorResponse "Unsupported recommendation"
// @Failure     404 {object} ErrorResponse "Recommendation, payee or transaction not found"
// @Failure     409 {object} ErrorResponse "Recommendation is not pending"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommendations/{id}/apply [post]
func (h *RecommendationHandler) ApplyRecommendation(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.recommendationService.ApplyRecommendation(workspaceID, recID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"budget_id": result.Budget.ID, "allocations": len(result.Allocations)}
	if result.Schedule != nil {
		changes["schedule_id"] = result.Schedule.ID
	}
	h.auditService.Log(workspaceID, "APPLY_RECOMMENDATION", "budget_recommendation", recID, c.ClientIP(), changes)

	c.JSON(http.StatusCreated, result)
}
