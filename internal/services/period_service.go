package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/logger"
	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
)

// periodService handles period templates, instances and rollover.
type periodService struct {
	db *gorm.DB
}

// NewPeriodService creates a new PeriodServicer.
func NewPeriodService(db *gorm.DB) PeriodServicer {
	return &periodService{db: db}
}

// GetTemplate returns the period template of a budget.
func (s *periodService) GetTemplate(workspaceID, budgetID string) (*models.BudgetPeriodTemplate, error) {
	if _, err := findBudget(s.db, workspaceID, budgetID); err != nil {
		return nil, err
	}
	return findTemplate(s.db, budgetID)
}

// GetInstance returns a period instance by ID.
func (s *periodService) GetInstance(workspaceID, instanceID string) (*models.BudgetPeriodInstance, error) {
	instance, _, _, err := findInstance(s.db, workspaceID, instanceID)
	return instance, err
}

// ListInstances returns a budget's period instances, newest first.
func (s *periodService) ListInstances(workspaceID, budgetID string, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetPeriodInstance], error) {
	if _, err := findBudget(s.db, workspaceID, budgetID); err != nil {
		return nil, err
	}
	template, err := findTemplate(s.db, budgetID)
	if err != nil {
		return nil, err
	}

	base := s.db.Model(&models.BudgetPeriodInstance{}).Where("template_id = ?", template.ID)

	result, err := pagination.Fetch[models.BudgetPeriodInstance](base, page, "start_date DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// CreatePeriodInstance creates an explicit instance for a budget's template.
// allocated defaults to the template allocation and rollover to zero.
func (s *periodService) CreatePeriodInstance(workspaceID, budgetID string, bounds PeriodBoundaries, allocated *int64, rollover *int64) (*models.BudgetPeriodInstance, error) {
	if _, err := parseDate(bounds.StartDate); err != nil {
		return nil, err
	}
	if _, err := parseDate(bounds.EndDate); err != nil {
		return nil, err
	}
	if bounds.EndDate < bounds.StartDate {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date must not be before start_date")
	}

	var result *models.BudgetPeriodInstance
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findBudget(tx, workspaceID, budgetID); err != nil {
			return err
		}
		template, err := findTemplate(tx, budgetID)
		if err != nil {
			return err
		}

		amount := template.AllocatedAmount
		if allocated != nil {
			amount = *allocated
		}
		var carried int64
		if rollover != nil {
			carried = *rollover
		}

		result, err = createInstance(tx, template, bounds, amount, carried)
		if err != nil {
			return err
		}
		_, err = recalculateInstanceActual(tx, budgetID, result)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EnsureInstance returns the instance covering date, creating it lazily.
func (s *periodService) EnsureInstance(workspaceID, budgetID, date string) (*models.BudgetPeriodInstance, error) {
	var result *models.BudgetPeriodInstance
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findBudget(tx, workspaceID, budgetID); err != nil {
			return err
		}
		template, err := findTemplate(tx, budgetID)
		if err != nil {
			return err
		}
		result, err = s.EnsureInstanceWithDB(tx, template, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EnsureInstanceWithDB finds or creates the instance covering date using the
// given connection. A new instance takes the template allocation and is
// seeded with the rollover of the latest instance that ended before it.
func (s *periodService) EnsureInstanceWithDB(tx *gorm.DB, template *models.BudgetPeriodTemplate, date string) (*models.BudgetPeriodInstance, error) {
	existing, err := s.FindInstanceWithDB(tx, template.ID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	ref, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	bounds, err := ComputePeriodBoundaries(template, ref)
	if err != nil {
		return nil, err
	}

	var rollover int64
	var previous models.BudgetPeriodInstance
	err = tx.Where("template_id = ? AND end_date < ?", template.ID, bounds.StartDate).
		Order("end_date DESC").
		First(&previous).Error
	switch {
	case err == nil:
		rollover = ComputeRollover(&previous)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	instance, err := createInstance(tx, template, bounds, template.AllocatedAmount, rollover)
	if err != nil {
		return nil, err
	}
	if _, err := recalculateInstanceActual(tx, template.BudgetID, instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// FindInstanceWithDB returns the instance of the template covering date, or
// nil when none has been created yet.
func (s *periodService) FindInstanceWithDB(tx *gorm.DB, templateID, date string) (*models.BudgetPeriodInstance, error) {
	return findCoveringInstance(tx, templateID, date)
}

func findCoveringInstance(tx *gorm.DB, templateID, date string) (*models.BudgetPeriodInstance, error) {
	var instance models.BudgetPeriodInstance
	err := tx.Where("template_id = ? AND start_date <= ? AND end_date >= ?", templateID, date, date).
		First(&instance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &instance, nil
}

// ClosePeriod computes the rollover of a finished period and carries it into
// the following period, creating that period if needed. A created period
// starts the day after the closed one and ends where the template's window
// containing that day ends.
func (s *periodService) ClosePeriod(workspaceID, instanceID string) (*models.BudgetPeriodInstance, error) {
	var next *models.BudgetPeriodInstance
	err := s.db.Transaction(func(tx *gorm.DB) error {
		instance, template, budget, err := findInstance(tx, workspaceID, instanceID)
		if err != nil {
			return err
		}

		// Bring actual up to date before deriving the rollover from it.
		if _, err := recalculateInstanceActual(tx, budget.ID, instance); err != nil {
			return err
		}
		rollover := ComputeRollover(instance)

		ref, err := nextPeriodReference(instance)
		if err != nil {
			return err
		}
		date := formatDate(ref)

		next, err = s.FindInstanceWithDB(tx, template.ID, date)
		if err != nil {
			return err
		}
		if next != nil {
			if err := tx.Model(next).Update("rollover_amount", rollover).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			next.RolloverAmount = rollover
		} else {
			bounds, err := ComputePeriodBoundaries(template, ref)
			if err != nil {
				return err
			}
			// A hand-made period may end mid-window; the next one starts the day after it.
			if bounds.StartDate <= instance.EndDate {
				bounds.StartDate = date
			}
			next, err = createInstance(tx, template, bounds, template.AllocatedAmount, rollover)
			if err != nil {
				return err
			}
			if _, err := recalculateInstanceActual(tx, budget.ID, next); err != nil {
				return err
			}
		}

		logger.Get().Infow("period closed",
			"budget_id", budget.ID,
			"period_id", instance.ID,
			"next_period_id", next.ID,
			"rollover", rollover,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// createInstance inserts a period after checking it does not overlap any
// existing period of the same template.
func createInstance(tx *gorm.DB, template *models.BudgetPeriodTemplate, bounds PeriodBoundaries, allocated, rollover int64) (*models.BudgetPeriodInstance, error) {
	var overlapping int64
	err := tx.Model(&models.BudgetPeriodInstance{}).
		Where("template_id = ? AND start_date <= ? AND end_date >= ?", template.ID, bounds.EndDate, bounds.StartDate).
		Count(&overlapping).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if overlapping > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrPeriodOverlap,
			fmt.Sprintf("period %s..%s overlaps an existing period", bounds.StartDate, bounds.EndDate))
	}

	instance := &models.BudgetPeriodInstance{
		TemplateID:      template.ID,
		StartDate:       bounds.StartDate,
		EndDate:         bounds.EndDate,
		AllocatedAmount: allocated,
		RolloverAmount:  rollover,
	}
	if err := tx.Create(instance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return instance, nil
}

// recalculateInstanceActual sums the budget's allocations whose transaction
// date falls inside the period and stores the result as the period's actual.
// An empty set sums to zero.
func recalculateInstanceActual(tx *gorm.DB, budgetID string, instance *models.BudgetPeriodInstance) (int64, error) {
	var total int64
	err := tx.Model(&models.BudgetTransaction{}).
		Select("COALESCE(SUM(budget_transactions.allocated_amount), 0)").
		Joins("JOIN transactions ON transactions.id = budget_transactions.transaction_id").
		Where("budget_transactions.budget_id = ? AND transactions.date BETWEEN ? AND ?",
			budgetID, instance.StartDate, instance.EndDate).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := tx.Model(instance).Update("actual_amount", total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	instance.ActualAmount = total
	return total, nil
}
