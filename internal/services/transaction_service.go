package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
)

// transactionService handles transaction entry and removal.
type transactionService struct {
	db          *gorm.DB
	allocations AllocationServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, allocations AllocationServicer) TransactionServicer {
	return &transactionService{
		db:          db,
		allocations: allocations,
	}
}

// CreateTransaction stores a transaction and auto-assigns it to its budget.
// If a strictly enforced budget blocks the assignment the transaction is not
// stored either.
func (s *transactionService) CreateTransaction(workspaceID string, in CreateTransactionInput) (*TransactionResult, error) {
	if in.AccountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}
	if in.Amount == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be zero")
	}
	if _, err := parseDate(in.Date); err != nil {
		return nil, err
	}

	var result *TransactionResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureAccount(tx, workspaceID, in.AccountID); err != nil {
			return err
		}
		if in.CategoryID != nil {
			if err := ensureCategory(tx, workspaceID, *in.CategoryID); err != nil {
				return err
			}
		}
		if in.PayeeID != nil {
			if err := ensurePayee(tx, workspaceID, *in.PayeeID); err != nil {
				return err
			}
		}

		transaction := &models.Transaction{
			WorkspaceID: workspaceID,
			AccountID:   in.AccountID,
			CategoryID:  in.CategoryID,
			PayeeID:     in.PayeeID,
			Amount:      in.Amount,
			Description: strings.TrimSpace(in.Description),
			Date:        in.Date,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		assignment, err := s.allocations.AutoAssignWithDB(tx, transaction)
		if err != nil {
			return err
		}
		result = &TransactionResult{Transaction: transaction, Assignment: assignment}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetTransactionByID returns a transaction by ID.
func (s *transactionService) GetTransactionByID(workspaceID, transactionID string) (*models.Transaction, error) {
	return findTransaction(s.db, workspaceID, transactionID)
}

// DeleteTransaction removes a transaction together with its allocations and
// refreshes the periods they counted towards.
func (s *transactionService) DeleteTransaction(workspaceID, transactionID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, workspaceID, transactionID)
		if err != nil {
			return err
		}
		if err := s.allocations.RemoveTransactionAllocationsWithDB(tx, transaction); err != nil {
			return err
		}
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func ensurePayee(tx *gorm.DB, workspaceID, payeeID string) error {
	var payee models.Payee
	if err := tx.Select("id").Where("id = ? AND workspace_id = ?", payeeID, workspaceID).First(&payee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPayeeNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
