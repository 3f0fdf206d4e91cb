package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
)

// findBudget loads a budget scoped to the workspace.
func findBudget(db *gorm.DB, workspaceID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := db.Where("id = ? AND workspace_id = ?", budgetID, workspaceID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// findTemplate loads the period template owned by a budget.
func findTemplate(db *gorm.DB, budgetID string) (*models.BudgetPeriodTemplate, error) {
	var template models.BudgetPeriodTemplate
	if err := db.Where("budget_id = ?", budgetID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &template, nil
}

// findTransaction loads a transaction scoped to the workspace.
func findTransaction(db *gorm.DB, workspaceID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.Where("id = ? AND workspace_id = ?", transactionID, workspaceID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// findInstance loads a period instance together with the budget that owns
// it, enforcing workspace scoping through the budget.
func findInstance(db *gorm.DB, workspaceID, instanceID string) (*models.BudgetPeriodInstance, *models.BudgetPeriodTemplate, *models.Budget, error) {
	var instance models.BudgetPeriodInstance
	if err := db.Where("id = ?", instanceID).First(&instance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperrors.ErrPeriodNotFound
		}
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var template models.BudgetPeriodTemplate
	if err := db.Where("id = ?", instance.TemplateID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperrors.ErrPeriodNotFound
		}
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budget, err := findBudget(db, workspaceID, template.BudgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			return nil, nil, nil, apperrors.ErrPeriodNotFound
		}
		return nil, nil, nil, err
	}
	return &instance, &template, budget, nil
}
