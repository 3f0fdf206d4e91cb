package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/logger"
	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db           *gorm.DB
	associations AssociationServicer
	periods      PeriodServicer
	defaultLevel models.EnforcementLevel
	now          func() time.Time
}

// NewBudgetService creates a new BudgetServicer. Budgets created without an
// enforcement level get defaultLevel.
func NewBudgetService(db *gorm.DB, associations AssociationServicer, periods PeriodServicer, defaultLevel models.EnforcementLevel) BudgetServicer {
	if !validEnforcementLevel(defaultLevel) {
		defaultLevel = models.EnforcementWarning
	}
	return &budgetService{
		db:           db,
		associations: associations,
		periods:      periods,
		defaultLevel: defaultLevel,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateBudget creates a budget with its period template and associations.
func (s *budgetService) CreateBudget(workspaceID string, in CreateBudgetInput) (*models.Budget, error) {
	var budget *models.Budget
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		budget, err = s.CreateBudgetWithDB(tx, workspaceID, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetBudgetByID(workspaceID, budget.ID)
}

// CreateBudgetWithDB creates a budget inside the caller's transaction.
func (s *budgetService) CreateBudgetWithDB(tx *gorm.DB, workspaceID string, in CreateBudgetInput) (*models.Budget, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	if !validBudgetType(in.Type) {
		return nil, apperrors.ErrInvalidBudgetType
	}

	level := in.EnforcementLevel
	if level == "" {
		level = s.defaultLevel
	}
	if !validEnforcementLevel(level) {
		return nil, apperrors.ErrInvalidEnforcementLevel
	}

	scope := in.Scope
	if scope == "" {
		scope = deriveScope(len(in.Accounts) > 0, len(in.CategoryIDs) > 0)
	}
	if !validBudgetScope(scope) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported budget scope "+string(scope))
	}

	template := &models.BudgetPeriodTemplate{
		Type:            in.Period.Type,
		StartDayOfMonth: defaultAnchor(in.Period.StartDayOfMonth),
		StartDayOfWeek:  in.Period.StartDayOfWeek,
		StartDayOfYear:  defaultAnchor(in.Period.StartDayOfYear),
		IntervalCount:   in.Period.IntervalCount,
		AllocatedAmount: in.Period.AllocatedAmount,
	}
	if template.Type == "" {
		template.Type = models.PeriodMonthly
	}
	if err := ValidateTemplate(template); err != nil {
		return nil, err
	}

	meta := in.Metadata
	if meta.AllocatedAmount != nil && template.AllocatedAmount == 0 {
		template.AllocatedAmount = *meta.AllocatedAmount
	}
	allocated := template.AllocatedAmount
	meta.AllocatedAmount = &allocated

	slug, err := uniqueSlug(tx, &models.Budget{}, workspaceID, slugify(name, "budget"))
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		WorkspaceID:      workspaceID,
		Name:             name,
		Slug:             slug,
		Type:             in.Type,
		Scope:            scope,
		Status:           models.BudgetStatusActive,
		EnforcementLevel: level,
		Metadata:         datatypes.NewJSONType(meta),
	}
	if err := tx.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	template.BudgetID = budget.ID
	if err := tx.Create(template).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	budget.Template = template

	if len(in.Accounts) > 0 {
		if budget.Accounts, err = s.associations.SyncAccountsWithDB(tx, workspaceID, budget.ID, in.Accounts); err != nil {
			return nil, err
		}
	}
	if len(in.CategoryIDs) > 0 {
		if budget.Categories, err = s.associations.SyncCategoriesWithDB(tx, workspaceID, budget.ID, in.CategoryIDs); err != nil {
			return nil, err
		}
	}

	logger.Get().Infow("budget created",
		"workspace_id", workspaceID,
		"budget_id", budget.ID,
		"type", budget.Type,
		"enforcement_level", budget.EnforcementLevel,
	)
	return budget, nil
}

// GetBudgetByID returns a budget with its template and associations.
func (s *budgetService) GetBudgetByID(workspaceID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Scopes(preloadBudget).
		Where("id = ? AND workspace_id = ?", budgetID, workspaceID).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// preloadBudget loads a budget's template and associations in a stable order.
func preloadBudget(db *gorm.DB) *gorm.DB {
	return db.Preload("Template").
		Preload("Accounts", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

// GetWorkspaceBudgets returns a paginated list of budgets with optional filters.
func (s *budgetService) GetWorkspaceBudgets(workspaceID string, page pagination.PageRequest, filter BudgetFilter) (*pagination.PageResponse[models.Budget], error) {
	if filter.Status != nil && !validBudgetStatus(*filter.Status) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported budget status "+string(*filter.Status))
	}
	if filter.Type != nil && !validBudgetType(*filter.Type) {
		return nil, apperrors.ErrInvalidBudgetType
	}

	base := s.db.Model(&models.Budget{}).Where("workspace_id = ?", workspaceID)
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}

	result, err := pagination.Fetch[models.Budget](base, page, "id ASC", preloadBudget)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// UpdateBudget updates an existing budget's mutable fields. A new allocated
// amount applies to periods created from now on.
func (s *budgetService) UpdateBudget(workspaceID, budgetID string, in UpdateBudgetInput) (*models.Budget, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		budget, err := findBudget(tx, workspaceID, budgetID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
			}
			updates["name"] = name
		}
		if in.EnforcementLevel != nil {
			if !validEnforcementLevel(*in.EnforcementLevel) {
				return apperrors.ErrInvalidEnforcementLevel
			}
			updates["enforcement_level"] = *in.EnforcementLevel
		}

		meta := budget.Metadata.Data()
		metaChanged := false
		if in.Metadata != nil {
			allocated := meta.AllocatedAmount
			meta = *in.Metadata
			meta.AllocatedAmount = allocated
			metaChanged = true
		}
		if in.AllocatedAmount != nil {
			if *in.AllocatedAmount < 0 {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "allocated_amount must not be negative")
			}
			amount := *in.AllocatedAmount
			meta.AllocatedAmount = &amount
			metaChanged = true
			if err := tx.Model(&models.BudgetPeriodTemplate{}).
				Where("budget_id = ?", budget.ID).
				Update("allocated_amount", amount).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if metaChanged {
			updates["metadata"] = datatypes.NewJSONType(meta)
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(budget).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetBudgetByID(workspaceID, budgetID)
}

// SetBudgetStatus moves a budget between active, inactive and archived.
func (s *budgetService) SetBudgetStatus(workspaceID, budgetID string, status models.BudgetStatus) (*models.Budget, error) {
	if !validBudgetStatus(status) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported budget status "+string(status))
	}

	budget, err := findBudget(s.db, workspaceID, budgetID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(budget).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("budget status changed",
		"budget_id", budget.ID,
		"status", status,
	)
	return s.GetBudgetByID(workspaceID, budgetID)
}

// DeleteBudget removes a budget and everything hanging off it. Applied
// recommendations that produced the budget go back to pending and schedules
// linked to it are detached, all in the same transaction as the delete.
func (s *budgetService) DeleteBudget(workspaceID, budgetID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		budget, err := findBudget(tx, workspaceID, budgetID)
		if err != nil {
			return err
		}

		reset := tx.Model(&models.BudgetRecommendation{}).
			Where("workspace_id = ? AND budget_id = ?", workspaceID, budget.ID).
			Updates(map[string]interface{}{
				"status":     models.RecommendationPending,
				"budget_id":  nil,
				"applied_at": nil,
			})
		if reset.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, reset.Error)
		}

		if err := tx.Model(&models.Schedule{}).
			Where("workspace_id = ? AND budget_id = ?", workspaceID, budget.ID).
			Update("budget_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.BudgetTransaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("template_id IN (?)",
			tx.Model(&models.BudgetPeriodTemplate{}).Select("id").Where("budget_id = ?", budget.ID),
		).Delete(&models.BudgetPeriodInstance{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, model := range []interface{}{
			&models.BudgetPeriodTemplate{},
			&models.BudgetAccount{},
			&models.BudgetCategory{},
		} {
			if err := tx.Where("budget_id = ?", budget.ID).Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := tx.Delete(budget).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		logger.Get().Infow("budget deleted",
			"workspace_id", workspaceID,
			"budget_id", budget.ID,
			"recommendations_reset", reset.RowsAffected,
		)
		return nil
	})
}

// GetBudgetProgress reports spending against the period covering today.
func (s *budgetService) GetBudgetProgress(workspaceID, budgetID string) (*BudgetProgress, error) {
	today := formatDate(s.now())

	var instance *models.BudgetPeriodInstance
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findBudget(tx, workspaceID, budgetID); err != nil {
			return err
		}
		template, err := findTemplate(tx, budgetID)
		if err != nil {
			return err
		}
		instance, err = s.periods.EnsureInstanceWithDB(tx, template, today)
		return err
	})
	if err != nil {
		return nil, err
	}

	total := instance.TotalAvailable()
	percentage, _ := Percentage(instance.ActualAmount, total).Round(2).Float64()

	return &BudgetProgress{
		BudgetID:        budgetID,
		PeriodID:        instance.ID,
		StartDate:       instance.StartDate,
		EndDate:         instance.EndDate,
		Allocated:       instance.AllocatedAmount,
		Rollover:        instance.RolloverAmount,
		TotalAvailable:  total,
		Spent:           instance.ActualAmount,
		Remaining:       instance.Remaining(),
		Percentage:      percentage,
		Utilization:     ClassifyUtilization(instance.ActualAmount, total),
		DeficitSeverity: ClassifyDeficit(instance.ActualAmount-total, total),
	}, nil
}

func deriveScope(hasAccounts, hasCategories bool) models.BudgetScope {
	switch {
	case hasAccounts && hasCategories:
		return models.BudgetScopeMixed
	case hasCategories:
		return models.BudgetScopeCategory
	default:
		return models.BudgetScopeAccount
	}
}

func validBudgetType(t models.BudgetType) bool {
	switch t {
	case models.BudgetTypeAccountMonthly, models.BudgetTypeCategoryEnvelope,
		models.BudgetTypeGoalBased, models.BudgetTypeScheduledExpense:
		return true
	}
	return false
}

func validBudgetScope(s models.BudgetScope) bool {
	switch s {
	case models.BudgetScopeAccount, models.BudgetScopeCategory, models.BudgetScopeMixed:
		return true
	}
	return false
}

func validBudgetStatus(s models.BudgetStatus) bool {
	switch s {
	case models.BudgetStatusActive, models.BudgetStatusInactive, models.BudgetStatusArchived:
		return true
	}
	return false
}

func validEnforcementLevel(l models.EnforcementLevel) bool {
	switch l {
	case models.EnforcementNone, models.EnforcementWarning, models.EnforcementStrict:
		return true
	}
	return false
}
