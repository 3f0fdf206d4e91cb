package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
)

// accountService registers the accounts budgets and transactions refer to.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new account in the workspace
func (s *accountService) CreateAccount(workspaceID, name string, accountType models.AccountType, currency string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if accountType == "" {
		accountType = models.AccountTypeChecking
	}
	if currency == "" {
		currency = "USD" // Default currency
	}

	account := &models.Account{
		WorkspaceID: workspaceID,
		Name:        name,
		Type:        accountType,
		Currency:    strings.ToUpper(currency),
		IsActive:    true,
	}
	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// GetWorkspaceAccounts returns a paginated list of the workspace's accounts.
func (s *accountService) GetWorkspaceAccounts(workspaceID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	base := s.db.Model(&models.Account{}).Where("workspace_id = ?", workspaceID)
	result, err := pagination.Fetch[models.Account](base, page, "id ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetAccountByID retrieves an account by ID within the workspace
func (s *accountService) GetAccountByID(workspaceID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND workspace_id = ?", accountID, workspaceID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}
