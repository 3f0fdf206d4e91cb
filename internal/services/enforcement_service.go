package services

import (
	"gorm.io/gorm"

	"budgetcore/internal/models"
)

// enforcementService evaluates proposed allocations against budget periods.
type enforcementService struct {
	db      *gorm.DB
	periods PeriodServicer
}

// NewEnforcementService creates a new EnforcementServicer.
func NewEnforcementService(db *gorm.DB, periods PeriodServicer) EnforcementServicer {
	return &enforcementService{db: db, periods: periods}
}

// CheckAllocation reports what would happen if amount were allocated to the
// budget on date. It never persists an allocation, although it may create the
// period instance covering date.
func (s *enforcementService) CheckAllocation(workspaceID, budgetID string, amount int64, date string) (*EnforcementResult, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}

	var result *EnforcementResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		budget, err := findBudget(tx, workspaceID, budgetID)
		if err != nil {
			return err
		}
		result, err = s.EvaluateWithDB(tx, budget, amount, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EvaluateWithDB runs the check inside the caller's transaction. Budgets that
// are not active are never evaluated and always allow.
func (s *enforcementService) EvaluateWithDB(tx *gorm.DB, budget *models.Budget, amount int64, date string) (*EnforcementResult, error) {
	result := &EnforcementResult{
		BudgetID: budget.ID,
		Level:    budget.EnforcementLevel,
		Decision: DecisionAllow,
		Proposed: amount,
	}
	if !budget.IsActive() {
		return result, nil
	}

	template, err := findTemplate(tx, budget.ID)
	if err != nil {
		return nil, err
	}
	instance, err := s.periods.EnsureInstanceWithDB(tx, template, date)
	if err != nil {
		return nil, err
	}

	remaining := instance.Remaining()
	result.Evaluated = true
	result.PeriodID = instance.ID
	result.Allocated = instance.AllocatedAmount
	result.Rollover = instance.RolloverAmount
	result.Actual = instance.ActualAmount
	result.Remaining = remaining
	result.Decision = Decide(budget.EnforcementLevel, amount, remaining)
	result.Utilization = ClassifyUtilization(instance.ActualAmount+amount, instance.TotalAvailable())
	return result, nil
}
