package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
	"budgetcore/internal/services"
)

// CategoryHandler handles category and payee requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name     string              `json:"name" binding:"required,min=1,max=100"`
	Type     models.CategoryType `json:"type" binding:"omitempty,category_type"`
	ParentID *string             `json:"parent_id" binding:"omitempty,uuid"`
}

// CreatePayeeRequest represents the request payload for creating a payee
type CreatePayeeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string                true "Workspace ID"
// @Param       request        body   CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate name"
// @Failure     404 {object} ErrorResponse "Parent category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	category, err := h.categoryService.CreateCategory(workspaceID, req.Name, req.Type, req.ParentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "CREATE_CATEGORY", "category", category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name, "type": category.Type})

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategories handles listing the workspace's categories
// @Summary     Get categories
// @Tags        categories
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       page           query  int    false "Page number (default 1)"
// @Param       page_size      query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Category] "Paginated categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
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

	result, err := h.categoryService.GetWorkspaceCategories(workspaceID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreatePayee handles the creation of a new payee
// @Summary     Create a payee
// @Tags        payees
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string             true "Workspace ID"
// @Param       request        body   CreatePayeeRequest true "Payee details"
// @Success     201 {object} models.Payee "Payee created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payees [post]
func (h *CategoryHandler) CreatePayee(c *gin.Context) {
	workspaceID, err := getWorkspaceID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePayeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	payee, err := h.categoryService.CreatePayee(workspaceID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(workspaceID, "CREATE_PAYEE", "payee", payee.ID, c.ClientIP(),
		map[string]interface{}{"name": payee.Name})

	c.JSON(http.StatusCreated, gin.H{"payee": payee})
}

// GetPayees handles listing the workspace's payees
// @Summary     Get payees
// @Tags        payees
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       page           query  int    false "Page number (default 1)"
// @Param       page_size      query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Payee] "Paginated payees"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payees [get]
func (h *CategoryHandler) GetPayees(c *gin.Context) {
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

	result, err := h.categoryService.GetWorkspacePayees(workspaceID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
