package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
)

// categoryService registers categories and payees.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(workspaceID, name string, categoryType models.CategoryType, parentID *string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if categoryType == "" {
		categoryType = models.CategoryTypeExpense
	}

	// Names are unique per workspace
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("workspace_id = ? AND name = ?", workspaceID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
	}

	if parentID != nil {
		var parent models.Category
		if err := s.db.Where("id = ? AND workspace_id = ?", *parentID, workspaceID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	category := &models.Category{
		WorkspaceID: workspaceID,
		Name:        name,
		Type:        categoryType,
		ParentID:    parentID,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetWorkspaceCategories retrieves a paginated list of categories.
func (s *categoryService) GetWorkspaceCategories(workspaceID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	base := s.db.Model(&models.Category{}).Where("workspace_id = ?", workspaceID)
	result, err := pagination.Fetch[models.Category](base, page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// CreatePayee creates a new payee
func (s *categoryService) CreatePayee(workspaceID, name string) (*models.Payee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payee name is required")
	}

	payee := &models.Payee{WorkspaceID: workspaceID, Name: name}
	if err := s.db.Create(payee).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payee, nil
}

// GetWorkspacePayees retrieves a paginated list of payees.
func (s *categoryService) GetWorkspacePayees(workspaceID string, page pagination.PageRequest) (*pagination.PageResponse[models.Payee], error) {
	base := s.db.Model(&models.Payee{}).Where("workspace_id = ?", workspaceID)
	result, err := pagination.Fetch[models.Payee](base, page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
