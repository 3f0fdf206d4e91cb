package services

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/logger"
	"budgetcore/internal/models"
)

// allocationService assigns transactions to budgets and keeps period actuals
// in step with the allocations.
type allocationService struct {
	db          *gorm.DB
	periods     PeriodServicer
	enforcement EnforcementServicer
}

// NewAllocationService creates a new AllocationServicer.
func NewAllocationService(db *gorm.DB, periods PeriodServicer, enforcement EnforcementServicer) AllocationServicer {
	return &allocationService{db: db, periods: periods, enforcement: enforcement}
}

// Allocate assigns part of a transaction to a budget after the enforcement
// pre-check. A strict block persists nothing.
func (s *allocationService) Allocate(workspaceID string, req AllocationRequest) (*AllocationResult, error) {
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidAllocation
	}

	var result *AllocationResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, workspaceID, req.TransactionID)
		if err != nil {
			return err
		}
		budget, err := findBudget(tx, workspaceID, req.BudgetID)
		if err != nil {
			return err
		}
		result, err = s.allocateWithDB(tx, budget, transaction, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SplitTransaction allocates a transaction across several budgets. Either
// every leg is stored or none is.
func (s *allocationService) SplitTransaction(workspaceID, transactionID string, splits []SplitAllocation) ([]AllocationResult, error) {
	if len(splits) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one split is required")
	}
	seen := make(map[string]bool, len(splits))
	for _, split := range splits {
		if split.Amount <= 0 {
			return nil, apperrors.ErrInvalidAllocation
		}
		if seen[split.BudgetID] {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget "+split.BudgetID+" appears in more than one split")
		}
		seen[split.BudgetID] = true
	}

	var results []AllocationResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, workspaceID, transactionID)
		if err != nil {
			return err
		}

		results = make([]AllocationResult, 0, len(splits))
		for _, split := range splits {
			budget, err := findBudget(tx, workspaceID, split.BudgetID)
			if err != nil {
				return err
			}
			result, err := s.allocateWithDB(tx, budget, transaction, AllocationRequest{
				TransactionID: transaction.ID,
				BudgetID:      budget.ID,
				Amount:        split.Amount,
				AssignedBy:    models.AssignedManual,
			})
			if err != nil {
				return err
			}
			results = append(results, *result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// SumAllocations returns the total allocated from a transaction.
func (s *allocationService) SumAllocations(workspaceID, transactionID string) (int64, error) {
	if _, err := findTransaction(s.db, workspaceID, transactionID); err != nil {
		return 0, err
	}
	return sumTransactionAllocations(s.db, transactionID)
}

// GetAllocationCoverage compares a transaction's allocations with its
// absolute amount.
func (s *allocationService) GetAllocationCoverage(workspaceID, transactionID string) (*AllocationCoverage, error) {
	transaction, err := findTransaction(s.db, workspaceID, transactionID)
	if err != nil {
		return nil, err
	}
	allocated, err := sumTransactionAllocations(s.db, transactionID)
	if err != nil {
		return nil, err
	}

	amount := transaction.AbsAmount()
	coverage := &AllocationCoverage{
		TransactionID:     transaction.ID,
		TransactionAmount: amount,
		Allocated:         allocated,
		Unallocated:       amount - allocated,
		Status:            CoverageExact,
	}
	switch {
	case allocated < amount:
		coverage.Status = CoverageUnder
	case allocated > amount:
		coverage.Status = CoverageOver
	}
	return coverage, nil
}

// ListTransactionAllocations returns a transaction's allocations in the order
// they were made.
func (s *allocationService) ListTransactionAllocations(workspaceID, transactionID string) ([]models.BudgetTransaction, error) {
	if _, err := findTransaction(s.db, workspaceID, transactionID); err != nil {
		return nil, err
	}

	var allocations []models.BudgetTransaction
	if err := s.db.Where("transaction_id = ?", transactionID).Order("id ASC").Find(&allocations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return allocations, nil
}

// FindApplicableBudgets returns the active budgets linked to the account or
// the category, without duplicates, in the order the links were made.
func (s *allocationService) FindApplicableBudgets(workspaceID string, accountID, categoryID *string) ([]string, error) {
	candidates, err := findApplicableWithDB(s.db, workspaceID, accountID, categoryID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.BudgetID
	}
	return ids, nil
}

// AutoAssign allocates a transaction to its budget when exactly one applies.
func (s *allocationService) AutoAssign(workspaceID, transactionID string) (*AutoAssignResult, error) {
	var result *AutoAssignResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, workspaceID, transactionID)
		if err != nil {
			return err
		}
		result, err = s.AutoAssignWithDB(tx, transaction)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AutoAssignWithDB runs auto-assignment inside the caller's transaction. One
// candidate receives the full absolute amount. Several candidates are
// reported as ambiguous and nothing is allocated, leaving the split to the
// user. A transaction that already carries allocations is left untouched.
func (s *allocationService) AutoAssignWithDB(tx *gorm.DB, transaction *models.Transaction) (*AutoAssignResult, error) {
	schedule, tracked, err := findScheduleMatchWithDB(tx, transaction)
	if err != nil {
		return nil, err
	}
	if tracked != nil {
		return s.assignScheduledWithDB(tx, transaction, schedule, tracked)
	}

	candidates, err := findApplicableWithDB(tx, transaction.WorkspaceID, &transaction.AccountID, transaction.CategoryID)
	if err != nil {
		return nil, err
	}

	result := &AutoAssignResult{Candidates: make([]string, len(candidates))}
	for i, c := range candidates {
		result.Candidates[i] = c.BudgetID
	}

	switch {
	case len(candidates) == 0:
		return result, nil
	case len(candidates) > 1:
		result.Ambiguous = true
		logger.Get().Infow("transaction matches several budgets, leaving for manual split",
			"transaction_id", transaction.ID,
			"candidates", result.Candidates,
		)
		return result, nil
	}

	budget, err := findBudget(tx, transaction.WorkspaceID, candidates[0].BudgetID)
	if err != nil {
		return nil, err
	}
	result.Result, err = s.allocateWholeWithDB(tx, budget, transaction, candidates[0].Source)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// assignScheduledWithDB books a transaction against the scheduled-expense
// budget tracking its schedule and links the transaction to the schedule.
func (s *allocationService) assignScheduledWithDB(tx *gorm.DB, transaction *models.Transaction, schedule *models.Schedule, budget *models.Budget) (*AutoAssignResult, error) {
	result := &AutoAssignResult{Candidates: []string{budget.ID}}
	if transaction.ScheduleID == nil {
		if err := tx.Model(transaction).Update("schedule_id", schedule.ID).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		transaction.ScheduleID = &schedule.ID
	}

	allocation, err := s.allocateWholeWithDB(tx, budget, transaction, models.AssignedScheduleMatch)
	if err != nil {
		return nil, err
	}
	result.Result = allocation
	return result, nil
}

// allocateWholeWithDB allocates the full absolute amount of a transaction
// that has no allocations yet. It returns nil when there is nothing to do.
func (s *allocationService) allocateWholeWithDB(tx *gorm.DB, budget *models.Budget, transaction *models.Transaction, source models.AssignmentSource) (*AllocationResult, error) {
	amount := transaction.AbsAmount()
	if amount == 0 {
		return nil, nil
	}
	existing, err := sumTransactionAllocations(tx, transaction.ID)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, nil
	}
	return s.allocateWithDB(tx, budget, transaction, AllocationRequest{
		TransactionID: transaction.ID,
		BudgetID:      budget.ID,
		Amount:        amount,
		AutoAssigned:  true,
		AssignedBy:    source,
	})
}

// RecalculateActual recomputes and stores the actual spend of one period.
func (s *allocationService) RecalculateActual(workspaceID, budgetID, instanceID string) (int64, error) {
	var total int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		instance, template, _, err := findInstance(tx, workspaceID, instanceID)
		if err != nil {
			return err
		}
		if template.BudgetID != budgetID {
			return apperrors.ErrPeriodNotFound
		}
		total, err = recalculateInstanceActual(tx, budgetID, instance)
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// RemoveAllocation deletes a single allocation and refreshes the affected period.
func (s *allocationService) RemoveAllocation(workspaceID, allocationID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var allocation models.BudgetTransaction
		if err := tx.Where("id = ?", allocationID).First(&allocation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAllocationNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		transaction, err := findTransaction(tx, workspaceID, allocation.TransactionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrTransactionNotFound) {
				return apperrors.ErrAllocationNotFound
			}
			return err
		}

		if err := tx.Delete(&allocation).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.refreshActualWithDB(tx, allocation.BudgetID, transaction.Date)
	})
}

// RemoveTransactionAllocations deletes every allocation of a transaction.
func (s *allocationService) RemoveTransactionAllocations(workspaceID, transactionID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, workspaceID, transactionID)
		if err != nil {
			return err
		}
		return s.RemoveTransactionAllocationsWithDB(tx, transaction)
	})
}

// RemoveTransactionAllocationsWithDB deletes a transaction's allocations and
// refreshes the period of every budget it touched.
func (s *allocationService) RemoveTransactionAllocationsWithDB(tx *gorm.DB, transaction *models.Transaction) error {
	var budgetIDs []string
	if err := tx.Model(&models.BudgetTransaction{}).
		Where("transaction_id = ?", transaction.ID).
		Distinct().Pluck("budget_id", &budgetIDs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(budgetIDs) == 0 {
		return nil
	}

	if err := tx.Where("transaction_id = ?", transaction.ID).Delete(&models.BudgetTransaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, budgetID := range budgetIDs {
		if err := s.refreshActualWithDB(tx, budgetID, transaction.Date); err != nil {
			return err
		}
	}
	return nil
}

// allocateWithDB evaluates and stores one allocation, then refreshes the
// period the transaction falls in.
func (s *allocationService) allocateWithDB(tx *gorm.DB, budget *models.Budget, transaction *models.Transaction, req AllocationRequest) (*AllocationResult, error) {
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidAllocation
	}

	check, err := s.enforcement.EvaluateWithDB(tx, budget, req.Amount, transaction.Date)
	if err != nil {
		return nil, err
	}
	switch check.Decision {
	case DecisionBlock:
		logger.Get().Infow("allocation blocked",
			"budget_id", budget.ID,
			"transaction_id", transaction.ID,
			"proposed", req.Amount,
			"remaining", check.Remaining,
		)
		return nil, apperrors.ErrBudgetExceeded
	case DecisionWarn:
		logger.Get().Warnw("allocation exceeds remaining budget",
			"budget_id", budget.ID,
			"transaction_id", transaction.ID,
			"proposed", req.Amount,
			"remaining", check.Remaining,
		)
	}

	assignedBy := req.AssignedBy
	if assignedBy == "" {
		assignedBy = models.AssignedManual
	}
	allocation := &models.BudgetTransaction{
		TransactionID:   transaction.ID,
		BudgetID:        budget.ID,
		AllocatedAmount: req.Amount,
		AutoAssigned:    req.AutoAssigned,
		AssignedBy:      assignedBy,
	}
	if err := tx.Create(allocation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.refreshActualWithDB(tx, budget.ID, transaction.Date); err != nil {
		return nil, err
	}
	if check.Evaluated {
		check.Actual += req.Amount
	}
	return &AllocationResult{Allocation: allocation, Enforcement: check}, nil
}

// refreshActualWithDB recomputes the actual of the budget's period covering
// date, if that period exists.
func (s *allocationService) refreshActualWithDB(tx *gorm.DB, budgetID, date string) error {
	template, err := findTemplate(tx, budgetID)
	if err != nil {
		return err
	}
	instance, err := s.periods.FindInstanceWithDB(tx, template.ID, date)
	if err != nil || instance == nil {
		return err
	}
	_, err = recalculateInstanceActual(tx, budgetID, instance)
	return err
}

// applicableBudget is a budget reached through one of its associations.
type applicableBudget struct {
	BudgetID string
	LinkID   string
	Source   models.AssignmentSource
}

// findScheduleMatchWithDB returns the earliest active schedule for the
// transaction's payee on its account whose budget is active and auto-tracks
// the schedule. Both results are nil when nothing matches.
func findScheduleMatchWithDB(tx *gorm.DB, transaction *models.Transaction) (*models.Schedule, *models.Budget, error) {
	if transaction.PayeeID == nil || *transaction.PayeeID == "" {
		return nil, nil, nil
	}

	var schedules []models.Schedule
	err := tx.Model(&models.Schedule{}).
		Select("schedules.*").
		Joins("JOIN budgets ON budgets.id = schedules.budget_id").
		Where("schedules.workspace_id = ? AND schedules.payee_id = ? AND schedules.status = ? AND budgets.status = ?",
			transaction.WorkspaceID, *transaction.PayeeID, models.ScheduleStatusActive, models.BudgetStatusActive).
		Where("(schedules.account_id = ? OR schedules.account_id IS NULL)", transaction.AccountID).
		Order("schedules.id ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range schedules {
		budget, err := findBudget(tx, transaction.WorkspaceID, *schedules[i].BudgetID)
		if err != nil {
			return nil, nil, err
		}
		meta := budget.Metadata.Data()
		if meta.AutoTrack && meta.LinkedScheduleID == schedules[i].ID {
			return &schedules[i], budget, nil
		}
	}
	return nil, nil, nil
}

// findApplicableWithDB unions the budgets linked to the account and to the
// category. Link IDs are UUIDv7 so ordering by them follows insertion order.
func findApplicableWithDB(tx *gorm.DB, workspaceID string, accountID, categoryID *string) ([]applicableBudget, error) {
	var matches []applicableBudget

	if accountID != nil && *accountID != "" {
		var rows []applicableBudget
		err := tx.Table("budget_accounts").
			Select("budget_accounts.budget_id AS budget_id, budget_accounts.id AS link_id").
			Joins("JOIN budgets ON budgets.id = budget_accounts.budget_id").
			Where("budget_accounts.account_id = ? AND budgets.workspace_id = ? AND budgets.status = ?",
				*accountID, workspaceID, models.BudgetStatusActive).
			Scan(&rows).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for i := range rows {
			rows[i].Source = models.AssignedAccountMatch
		}
		matches = append(matches, rows...)
	}

	if categoryID != nil && *categoryID != "" {
		var rows []applicableBudget
		err := tx.Table("budget_categories").
			Select("budget_categories.budget_id AS budget_id, budget_categories.id AS link_id").
			Joins("JOIN budgets ON budgets.id = budget_categories.budget_id").
			Where("budget_categories.category_id = ? AND budgets.workspace_id = ? AND budgets.status = ?",
				*categoryID, workspaceID, models.BudgetStatusActive).
			Scan(&rows).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for i := range rows {
			rows[i].Source = models.AssignedCategoryMatch
		}
		matches = append(matches, rows...)
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].LinkID < matches[j].LinkID })

	seen := make(map[string]bool, len(matches))
	result := make([]applicableBudget, 0, len(matches))
	for _, m := range matches {
		if seen[m.BudgetID] {
			continue
		}
		seen[m.BudgetID] = true
		result = append(result, m)
	}
	return result, nil
}

func sumTransactionAllocations(db *gorm.DB, transactionID string) (int64, error) {
	var total int64
	err := db.Model(&models.BudgetTransaction{}).
		Select("COALESCE(SUM(allocated_amount), 0)").
		Where("transaction_id = ?", transactionID).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
