package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
)

// associationService replaces the accounts and categories a budget is linked to.
type associationService struct {
	db *gorm.DB
}

// NewAssociationService creates a new AssociationServicer.
func NewAssociationService(db *gorm.DB) AssociationServicer {
	return &associationService{db: db}
}

// SyncAccounts replaces the budget's account links with the given set.
func (s *associationService) SyncAccounts(workspaceID, budgetID string, accounts []AccountAssociation) ([]models.BudgetAccount, error) {
	var links []models.BudgetAccount
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		links, err = s.SyncAccountsWithDB(tx, workspaceID, budgetID, accounts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// SyncCategories replaces the budget's category links with the given set.
func (s *associationService) SyncCategories(workspaceID, budgetID string, categoryIDs []string) ([]models.BudgetCategory, error) {
	var links []models.BudgetCategory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		links, err = s.SyncCategoriesWithDB(tx, workspaceID, budgetID, categoryIDs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// SyncAccountsWithDB deletes every existing account link of the budget and
// inserts the new set using the given connection. The caller owns the
// transaction so a failure leaves the previous links in place.
func (s *associationService) SyncAccountsWithDB(tx *gorm.DB, workspaceID, budgetID string, accounts []AccountAssociation) ([]models.BudgetAccount, error) {
	if _, err := findBudget(tx, workspaceID, budgetID); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		if seen[a.AccountID] {
			return nil, apperrors.WithMessage(apperrors.ErrDuplicateAssociation, "account "+a.AccountID+" listed more than once")
		}
		seen[a.AccountID] = true
		if err := ensureAccount(tx, workspaceID, a.AccountID); err != nil {
			return nil, err
		}
	}

	if err := tx.Where("budget_id = ?", budgetID).Delete(&models.BudgetAccount{}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	links := make([]models.BudgetAccount, 0, len(accounts))
	for _, a := range accounts {
		assocType := a.AssociationType
		if assocType == "" {
			assocType = models.AssociationSpending
		}
		link := models.BudgetAccount{
			BudgetID:        budgetID,
			AccountID:       a.AccountID,
			AssociationType: assocType,
		}
		if err := tx.Create(&link).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		links = append(links, link)
	}
	return links, nil
}

// SyncCategoriesWithDB deletes every existing category link of the budget and
// inserts the new set using the given connection.
func (s *associationService) SyncCategoriesWithDB(tx *gorm.DB, workspaceID, budgetID string, categoryIDs []string) ([]models.BudgetCategory, error) {
	if _, err := findBudget(tx, workspaceID, budgetID); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		if seen[id] {
			return nil, apperrors.WithMessage(apperrors.ErrDuplicateAssociation, "category "+id+" listed more than once")
		}
		seen[id] = true
		if err := ensureCategory(tx, workspaceID, id); err != nil {
			return nil, err
		}
	}

	if err := tx.Where("budget_id = ?", budgetID).Delete(&models.BudgetCategory{}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	links := make([]models.BudgetCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		link := models.BudgetCategory{BudgetID: budgetID, CategoryID: id}
		if err := tx.Create(&link).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		links = append(links, link)
	}
	return links, nil
}

func ensureAccount(tx *gorm.DB, workspaceID, accountID string) error {
	var account models.Account
	if err := tx.Select("id").Where("id = ? AND workspace_id = ?", accountID, workspaceID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func ensureCategory(tx *gorm.DB, workspaceID, categoryID string) error {
	var category models.Category
	if err := tx.Select("id").Where("id = ? AND workspace_id = ?", categoryID, workspaceID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
