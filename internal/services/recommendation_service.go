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

// recommendationService drives recommendations from pending to applied,
// dismissed or expired.
type recommendationService struct {
	db        *gorm.DB
	budgets   BudgetServicer
	ttl       time.Duration
	retention time.Duration
	now       func() time.Time
}

// NewRecommendationService creates a new RecommendationServicer. ttl is the
// default lifetime of a new recommendation; retention is how long expired
// recommendations are kept before being purged.
func NewRecommendationService(db *gorm.DB, budgets BudgetServicer, ttl, retention time.Duration) RecommendationServicer {
	return &recommendationService{
		db:        db,
		budgets:   budgets,
		ttl:       ttl,
		retention: retention,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateRecommendation stores a draft unless an equivalent pending
// recommendation already exists, in which case that one is returned and
// created is false.
func (s *recommendationService) CreateRecommendation(workspaceID string, draft RecommendationDraft) (*models.BudgetRecommendation, bool, error) {
	if draft.Type != models.RecommendationCreateBudget {
		return nil, false, apperrors.ErrUnsupportedRecommendation
	}
	if draft.Confidence < 0 || draft.Confidence > 100 {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "confidence must be between 0 and 100")
	}
	priority := draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	var rec *models.BudgetRecommendation
	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BudgetRecommendation
		q := tx.Where("workspace_id = ? AND type = ? AND status = ?", workspaceID, draft.Type, models.RecommendationPending)
		q = whereNullable(q, "account_id", draft.AccountID)
		q = whereNullable(q, "category_id", draft.CategoryID)
		err := q.Order("id ASC").First(&existing).Error
		if err == nil {
			rec = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		expiresAt := s.now().Add(s.ttl)
		if draft.ExpiresAt != nil {
			expiresAt = draft.ExpiresAt.UTC()
		}
		rec = &models.BudgetRecommendation{
			WorkspaceID: workspaceID,
			Type:        draft.Type,
			Title:       strings.TrimSpace(draft.Title),
			Priority:    priority,
			Confidence:  draft.Confidence,
			Status:      models.RecommendationPending,
			AccountID:   draft.AccountID,
			CategoryID:  draft.CategoryID,
			Metadata:    datatypes.NewJSONType(draft.Metadata),
			ExpiresAt:   &expiresAt,
		}
		if err := tx.Create(rec).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return rec, created, nil
}

// GetRecommendation returns a recommendation by ID.
func (s *recommendationService) GetRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error) {
	return findRecommendation(s.db, workspaceID, recommendationID)
}

// ListRecommendations returns recommendations newest first, optionally
// filtered by status.
func (s *recommendationService) ListRecommendations(workspaceID string, status *models.RecommendationStatus, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetRecommendation], error) {
	base := s.db.Model(&models.BudgetRecommendation{}).Where("workspace_id = ?", workspaceID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	result, err := pagination.Fetch[models.BudgetRecommendation](base, page, "id DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// DismissRecommendation moves a pending recommendation to dismissed.
func (s *recommendationService) DismissRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error) {
	now := s.now()
	res := s.db.Model(&models.BudgetRecommendation{}).
		Where("id = ? AND workspace_id = ? AND status = ?", recommendationID, workspaceID, models.RecommendationPending).
		Updates(map[string]interface{}{
			"status":       models.RecommendationDismissed,
			"dismissed_at": now,
		})
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := findRecommendation(s.db, workspaceID, recommendationID); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrRecommendationNotPending
	}

	logger.Get().Infow("recommendation dismissed", "recommendation_id", recommendationID)
	return findRecommendation(s.db, workspaceID, recommendationID)
}

// RestoreRecommendation moves a dismissed recommendation back to pending. A
// recommendation whose expiry passed while dismissed gets a fresh lifetime.
func (s *recommendationService) RestoreRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error) {
	rec, err := findRecommendation(s.db, workspaceID, recommendationID)
	if err != nil {
		return nil, err
	}
	if rec.Status != models.RecommendationDismissed {
		return nil, apperrors.ErrRecommendationNotDismissed
	}

	now := s.now()
	updates := map[string]interface{}{
		"status":       models.RecommendationPending,
		"dismissed_at": nil,
	}
	if rec.ExpiresAt != nil && rec.ExpiresAt.Before(now) {
		updates["expires_at"] = now.Add(s.ttl)
	}

	res := s.db.Model(&models.BudgetRecommendation{}).
		Where("id = ? AND workspace_id = ? AND status = ?", recommendationID, workspaceID, models.RecommendationDismissed).
		Updates(updates)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrRecommendationNotDismissed
	}

	logger.Get().Infow("recommendation restored", "recommendation_id", recommendationID)
	return findRecommendation(s.db, workspaceID, recommendationID)
}

// ApplyRecommendation creates the budget a pending recommendation proposes.
// Scheduled expenses also get a schedule and have the detected transactions
// attached to it. Everything happens in one transaction; any failure leaves
// the recommendation pending and nothing created.
func (s *recommendationService) ApplyRecommendation(workspaceID, recommendationID string) (*ApplyResult, error) {
	result := &ApplyResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rec, err := findRecommendation(tx, workspaceID, recommendationID)
		if err != nil {
			return err
		}
		now := s.now()
		if rec.Status != models.RecommendationPending {
			return apperrors.ErrRecommendationNotPending
		}
		if rec.ExpiresAt != nil && rec.ExpiresAt.Before(now) {
			return apperrors.WithMessage(apperrors.ErrRecommendationNotPending, "Recommendation has expired")
		}
		if rec.Type != models.RecommendationCreateBudget {
			return apperrors.ErrUnsupportedRecommendation
		}

		meta := rec.Metadata.Data()
		if meta.SuggestedType == models.BudgetTypeScheduledExpense {
			result.Schedule, result.Budget, err = s.applyScheduledExpense(tx, rec, meta, now)
		} else {
			result.Budget, err = s.applyBudget(tx, rec, meta)
		}
		if err != nil {
			return err
		}

		res := tx.Model(&models.BudgetRecommendation{}).
			Where("id = ? AND status = ?", rec.ID, models.RecommendationPending).
			Updates(map[string]interface{}{
				"status":     models.RecommendationApplied,
				"applied_at": now,
				"budget_id":  result.Budget.ID,
			})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrRecommendationNotPending
		}

		result.Allocations, err = s.attachTransactions(tx, workspaceID, meta.TransactionIDs, result.Budget, result.Schedule)
		if err != nil {
			return err
		}

		rec.Status = models.RecommendationApplied
		rec.AppliedAt = &now
		rec.BudgetID = &result.Budget.ID
		result.Recommendation = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("recommendation applied",
		"workspace_id", workspaceID,
		"recommendation_id", recommendationID,
		"budget_id", result.Budget.ID,
		"allocations", len(result.Allocations),
	)
	return result, nil
}

// ExpireStale marks pending recommendations past their expiry as expired.
func (s *recommendationService) ExpireStale() (int64, error) {
	res := s.db.Model(&models.BudgetRecommendation{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.RecommendationPending, s.now()).
		Update("status", models.RecommendationExpired)
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected > 0 {
		logger.Get().Infow("expired stale recommendations", "count", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// PurgeExpired deletes expired recommendations once the retention window
// after their expiry has passed.
func (s *recommendationService) PurgeExpired() (int64, error) {
	cutoff := s.now().Add(-s.retention)
	res := s.db.Where("status = ? AND expires_at < ?", models.RecommendationExpired, cutoff).
		Delete(&models.BudgetRecommendation{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected > 0 {
		logger.Get().Infow("purged expired recommendations", "count", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// applyScheduledExpense creates the recurring schedule for the detected payee
// and the scheduled-expense budget tracking it.
func (s *recommendationService) applyScheduledExpense(tx *gorm.DB, rec *models.BudgetRecommendation, meta models.RecommendationMetadata, now time.Time) (*models.Schedule, *models.Budget, error) {
	if len(meta.PayeeIDs) == 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrPayeeNotFound, "Recommendation has no payee")
	}
	var payee models.Payee
	if err := tx.Where("id = ? AND workspace_id = ?", meta.PayeeIDs[0], rec.WorkspaceID).First(&payee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrPayeeNotFound
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	frequency, interval := scheduleFrequency(meta.DetectedFrequency)

	slug, err := uniqueSlug(tx, &models.Schedule{}, rec.WorkspaceID, slugify(payee.Name, "schedule"))
	if err != nil {
		return nil, nil, err
	}
	schedule := &models.Schedule{
		WorkspaceID: rec.WorkspaceID,
		Name:        payee.Name,
		Slug:        slug,
		AccountID:   rec.AccountID,
		PayeeID:     &payee.ID,
		CategoryID:  rec.CategoryID,
		Amount:      meta.SuggestedAmount,
		AutoAdd:     true,
		Status:      models.ScheduleStatusActive,
	}
	if err := tx.Create(schedule).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	recurrence := &models.ScheduleRecurrence{
		ScheduleID: schedule.ID,
		Frequency:  frequency,
		Interval:   interval,
		StartDate:  formatDate(now),
	}
	if err := tx.Create(recurrence).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	schedule.Recurrence = recurrence

	detected := strings.TrimSpace(meta.DetectedFrequency)
	if detected == "" {
		detected = string(frequency)
	}
	name := rec.Title
	if name == "" {
		name = payee.Name
	}
	budget, err := s.budgets.CreateBudgetWithDB(tx, rec.WorkspaceID, CreateBudgetInput{
		Name:             name,
		Type:             models.BudgetTypeScheduledExpense,
		Scope:            models.BudgetScopeAccount,
		EnforcementLevel: models.EnforcementWarning,
		Metadata: models.BudgetMetadata{
			LinkedScheduleID: schedule.ID,
			ExpectedAmount:   meta.SuggestedAmount,
			Frequency:        detected,
			AutoTrack:        true,
		},
		Period: PeriodTemplateInput{
			Type:            models.PeriodMonthly,
			StartDayOfMonth: 1,
			AllocatedAmount: meta.SuggestedAmount,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Model(schedule).Update("budget_id", budget.ID).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	schedule.BudgetID = &budget.ID
	return schedule, budget, nil
}

// applyBudget creates a plain budget linked to the recommendation's account
// and category.
func (s *recommendationService) applyBudget(tx *gorm.DB, rec *models.BudgetRecommendation, meta models.RecommendationMetadata) (*models.Budget, error) {
	budgetType := meta.SuggestedType
	if budgetType == "" {
		budgetType = models.BudgetTypeAccountMonthly
		if rec.CategoryID != nil {
			budgetType = models.BudgetTypeCategoryEnvelope
		}
	}
	name := rec.Title
	if name == "" {
		name = "Recommended budget"
	}

	in := CreateBudgetInput{
		Name: name,
		Type: budgetType,
		Period: PeriodTemplateInput{
			Type:            models.PeriodMonthly,
			StartDayOfMonth: 1,
			AllocatedAmount: meta.SuggestedAmount,
		},
	}
	if rec.AccountID != nil {
		in.Accounts = []AccountAssociation{{AccountID: *rec.AccountID, AssociationType: models.AssociationSpending}}
	}
	if rec.CategoryID != nil {
		in.CategoryIDs = []string{*rec.CategoryID}
	}
	return s.budgets.CreateBudgetWithDB(tx, rec.WorkspaceID, in)
}

// attachTransactions allocates the recommendation's detected transactions to
// the new budget and, for scheduled expenses, links them to the schedule.
func (s *recommendationService) attachTransactions(tx *gorm.DB, workspaceID string, transactionIDs []string, budget *models.Budget, schedule *models.Schedule) ([]models.BudgetTransaction, error) {
	allocations := make([]models.BudgetTransaction, 0, len(transactionIDs))
	dates := make(map[string]bool)

	for _, id := range transactionIDs {
		transaction, err := findTransaction(tx, workspaceID, id)
		if err != nil {
			return nil, err
		}
		if schedule != nil {
			if err := tx.Model(transaction).Update("schedule_id", schedule.ID).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if transaction.AbsAmount() == 0 {
			continue
		}

		allocation := models.BudgetTransaction{
			TransactionID:   transaction.ID,
			BudgetID:        budget.ID,
			AllocatedAmount: transaction.AbsAmount(),
			AutoAssigned:    true,
			AssignedBy:      models.AssignedRecommendation,
		}
		if err := tx.Create(&allocation).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		allocations = append(allocations, allocation)
		dates[transaction.Date] = true
	}

	if budget.Template == nil {
		return allocations, nil
	}
	refreshed := make(map[string]bool)
	for date := range dates {
		instance, err := findCoveringInstance(tx, budget.Template.ID, date)
		if err != nil {
			return nil, err
		}
		if instance == nil || refreshed[instance.ID] {
			continue
		}
		refreshed[instance.ID] = true
		if _, err := recalculateInstanceActual(tx, budget.ID, instance); err != nil {
			return nil, err
		}
	}
	return allocations, nil
}

// scheduleFrequency maps a detected frequency onto a recurrence unit and
// interval. Unrecognized values fall back to monthly.
func scheduleFrequency(detected string) (models.RecurrenceFrequency, int) {
	switch strings.ToLower(strings.TrimSpace(detected)) {
	case "daily":
		return models.FrequencyDaily, 1
	case "weekly":
		return models.FrequencyWeekly, 1
	case "bi-weekly", "biweekly":
		return models.FrequencyWeekly, 2
	case "monthly":
		return models.FrequencyMonthly, 1
	case "quarterly":
		return models.FrequencyMonthly, 3
	case "yearly", "annual":
		return models.FrequencyYearly, 1
	default:
		return models.FrequencyMonthly, 1
	}
}

func findRecommendation(db *gorm.DB, workspaceID, recommendationID string) (*models.BudgetRecommendation, error) {
	var rec models.BudgetRecommendation
	if err := db.Where("id = ? AND workspace_id = ?", recommendationID, workspaceID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecommendationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rec, nil
}

func whereNullable(q *gorm.DB, column string, value *string) *gorm.DB {
	if value == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", *value)
}
