package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetcore/internal/models"
	"budgetcore/internal/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewWorkspaceID returns a fresh workspace identifier.
func NewWorkspaceID() string {
	return uuid.New()
}

// CreateTestAccount creates a checking account in the workspace.
func CreateTestAccount(t *testing.T, db *gorm.DB, workspaceID string) *models.Account {
	t.Helper()

	account := &models.Account{
		WorkspaceID: workspaceID,
		Name:        fmt.Sprintf("Test Account %d", nextID()),
		Type:        models.AccountTypeChecking,
		Currency:    "USD",
		IsActive:    true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates an expense category.
func CreateTestCategory(t *testing.T, db *gorm.DB, workspaceID string) *models.Category {
	t.Helper()

	category := &models.Category{
		WorkspaceID: workspaceID,
		Name:        fmt.Sprintf("Test Category %d", nextID()),
		Type:        models.CategoryTypeExpense,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestPayee creates a payee with the given name.
func CreateTestPayee(t *testing.T, db *gorm.DB, workspaceID, name string) *models.Payee {
	t.Helper()

	payee := &models.Payee{WorkspaceID: workspaceID, Name: name}
	if err := db.Create(payee).Error; err != nil {
		t.Fatalf("failed to create test payee: %v", err)
	}
	return payee
}

// CreateTestTransaction creates a transaction on the account for the given
// signed amount (in cents) and YYYY-MM-DD date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, account *models.Account, categoryID *string, amount int64, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		WorkspaceID: account.WorkspaceID,
		AccountID:   account.ID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates an active budget with a calendar-month template
// allocating the given amount.
func CreateTestBudget(t *testing.T, db *gorm.DB, workspaceID string, level models.EnforcementLevel, allocated int64) *models.Budget {
	t.Helper()

	n := nextID()
	budget := &models.Budget{
		WorkspaceID:      workspaceID,
		Name:             fmt.Sprintf("Test Budget %d", n),
		Slug:             fmt.Sprintf("test-budget-%d", n),
		Type:             models.BudgetTypeCategoryEnvelope,
		Scope:            models.BudgetScopeMixed,
		Status:           models.BudgetStatusActive,
		EnforcementLevel: level,
		Metadata:         datatypes.NewJSONType(models.BudgetMetadata{AllocatedAmount: &allocated}),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	template := &models.BudgetPeriodTemplate{
		BudgetID:        budget.ID,
		Type:            models.PeriodMonthly,
		StartDayOfMonth: 1,
		AllocatedAmount: allocated,
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("failed to create test period template: %v", err)
	}
	budget.Template = template
	return budget
}

// CreateTestPeriod creates a period instance for the template.
func CreateTestPeriod(t *testing.T, db *gorm.DB, templateID, start, end string, allocated, rollover, actual int64) *models.BudgetPeriodInstance {
	t.Helper()

	period := &models.BudgetPeriodInstance{
		TemplateID:      templateID,
		StartDate:       start,
		EndDate:         end,
		AllocatedAmount: allocated,
		RolloverAmount:  rollover,
		ActualAmount:    actual,
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test period: %v", err)
	}
	return period
}

// LinkBudgetAccount associates the budget with an account.
func LinkBudgetAccount(t *testing.T, db *gorm.DB, budgetID, accountID string) {
	t.Helper()

	link := &models.BudgetAccount{BudgetID: budgetID, AccountID: accountID, AssociationType: models.AssociationSpending}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("failed to link budget account: %v", err)
	}
}

// LinkBudgetCategory associates the budget with a category.
func LinkBudgetCategory(t *testing.T, db *gorm.DB, budgetID, categoryID string) {
	t.Helper()

	link := &models.BudgetCategory{BudgetID: budgetID, CategoryID: categoryID}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("failed to link budget category: %v", err)
	}
}

// CreateTestRecommendation stores a pending create_budget recommendation.
func CreateTestRecommendation(t *testing.T, db *gorm.DB, workspaceID string, accountID, categoryID *string, meta models.RecommendationMetadata) *models.BudgetRecommendation {
	t.Helper()

	expires := time.Now().UTC().Add(30 * 24 * time.Hour)
	rec := &models.BudgetRecommendation{
		WorkspaceID: workspaceID,
		Type:        models.RecommendationCreateBudget,
		Priority:    models.PriorityMedium,
		Confidence:  80,
		Status:      models.RecommendationPending,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Metadata:    datatypes.NewJSONType(meta),
		ExpiresAt:   &expires,
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("failed to create test recommendation: %v", err)
	}
	return rec
}
