package services

import (
	"time"

	"gorm.io/gorm"

	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
)

// PeriodServicer defines the contract for period templates and instances.
type PeriodServicer interface {
	GetTemplate(workspaceID, budgetID string) (*models.BudgetPeriodTemplate, error)
	GetInstance(workspaceID, instanceID string) (*models.BudgetPeriodInstance, error)
	ListInstances(workspaceID, budgetID string, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetPeriodInstance], error)
	CreatePeriodInstance(workspaceID, budgetID string, bounds PeriodBoundaries, allocated *int64, rollover *int64) (*models.BudgetPeriodInstance, error)
	EnsureInstance(workspaceID, budgetID, date string) (*models.BudgetPeriodInstance, error)
	ClosePeriod(workspaceID, instanceID string) (*models.BudgetPeriodInstance, error)
	EnsureInstanceWithDB(tx *gorm.DB, template *models.BudgetPeriodTemplate, date string) (*models.BudgetPeriodInstance, error)
	FindInstanceWithDB(tx *gorm.DB, templateID, date string) (*models.BudgetPeriodInstance, error)
}

// EnforcementResult is the outcome of checking a proposed allocation against
// a budget's current period.
type EnforcementResult struct {
	BudgetID    string                  `json:"budget_id"`
	PeriodID    string                  `json:"period_id,omitempty"`
	Level       models.EnforcementLevel `json:"enforcement_level"`
	Evaluated   bool                    `json:"evaluated"`
	Decision    Decision                `json:"decision"`
	Proposed    int64                   `json:"proposed"`
	Allocated   int64                   `json:"allocated"`
	Rollover    int64                   `json:"rollover"`
	Actual      int64                   `json:"actual"`
	Remaining   int64                   `json:"remaining"`
	Utilization UtilizationStatus       `json:"utilization"`
}

// EnforcementServicer defines the contract for enforcement pre-checks.
type EnforcementServicer interface {
	CheckAllocation(workspaceID, budgetID string, amount int64, date string) (*EnforcementResult, error)
	EvaluateWithDB(tx *gorm.DB, budget *models.Budget, amount int64, date string) (*EnforcementResult, error)
}

// AccountAssociation is one entry of an account sync request.
type AccountAssociation struct {
	AccountID       string                 `json:"account_id" binding:"required,uuid"`
	AssociationType models.AssociationType `json:"association_type" binding:"omitempty,association_type"`
}

// AssociationServicer defines the contract for budget account/category links.
type AssociationServicer interface {
	SyncAccounts(workspaceID, budgetID string, accounts []AccountAssociation) ([]models.BudgetAccount, error)
	SyncCategories(workspaceID, budgetID string, categoryIDs []string) ([]models.BudgetCategory, error)
	SyncAccountsWithDB(tx *gorm.DB, workspaceID, budgetID string, accounts []AccountAssociation) ([]models.BudgetAccount, error)
	SyncCategoriesWithDB(tx *gorm.DB, workspaceID, budgetID string, categoryIDs []string) ([]models.BudgetCategory, error)
}

// AllocationRequest asks for (part of) a transaction to be assigned to a budget.
type AllocationRequest struct {
	TransactionID string
	BudgetID      string
	Amount        int64
	AutoAssigned  bool
	AssignedBy    models.AssignmentSource
}

// SplitAllocation is one leg of a split transaction.
type SplitAllocation struct {
	BudgetID string `json:"budget_id" binding:"required,uuid"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

// AllocationResult pairs a stored allocation with the enforcement outcome
// that let it through.
type AllocationResult struct {
	Allocation  *models.BudgetTransaction `json:"allocation"`
	Enforcement *EnforcementResult        `json:"enforcement"`
}

// CoverageStatus compares a transaction's allocations with its amount.
type CoverageStatus string

const (
	CoverageExact CoverageStatus = "exact"
	CoverageUnder CoverageStatus = "under"
	CoverageOver  CoverageStatus = "over"
)

// AllocationCoverage reports how much of a transaction is allocated.
type AllocationCoverage struct {
	TransactionID     string         `json:"transaction_id"`
	TransactionAmount int64          `json:"transaction_amount"`
	Allocated         int64          `json:"allocated"`
	Unallocated       int64          `json:"unallocated"`
	Status            CoverageStatus `json:"status"`
}

// AutoAssignResult describes what auto-assignment did with a transaction.
// Several candidates leave the transaction unallocated for a manual split.
type AutoAssignResult struct {
	Candidates []string          `json:"candidates"`
	Ambiguous  bool              `json:"ambiguous"`
	Result     *AllocationResult `json:"result,omitempty"`
}

// AllocationServicer defines the contract for transaction-to-budget allocation.
type AllocationServicer interface {
	Allocate(workspaceID string, req AllocationRequest) (*AllocationResult, error)
	SplitTransaction(workspaceID, transactionID string, splits []SplitAllocation) ([]AllocationResult, error)
	SumAllocations(workspaceID, transactionID string) (int64, error)
	GetAllocationCoverage(workspaceID, transactionID string) (*AllocationCoverage, error)
	ListTransactionAllocations(workspaceID, transactionID string) ([]models.BudgetTransaction, error)
	FindApplicableBudgets(workspaceID string, accountID, categoryID *string) ([]string, error)
	AutoAssign(workspaceID, transactionID string) (*AutoAssignResult, error)
	RecalculateActual(workspaceID, budgetID, instanceID string) (int64, error)
	RemoveAllocation(workspaceID, allocationID string) error
	RemoveTransactionAllocations(workspaceID, transactionID string) error
	AutoAssignWithDB(tx *gorm.DB, transaction *models.Transaction) (*AutoAssignResult, error)
	RemoveTransactionAllocationsWithDB(tx *gorm.DB, transaction *models.Transaction) error
}

// PeriodTemplateInput describes the template created with a budget.
type PeriodTemplateInput struct {
	Type            models.PeriodType `json:"type" binding:"required,period_type"`
	StartDayOfMonth int               `json:"start_day_of_month" binding:"omitempty,min=1,max=31"`
	StartDayOfWeek  int               `json:"start_day_of_week" binding:"omitempty,min=0,max=6"`
	StartDayOfYear  int               `json:"start_day_of_year" binding:"omitempty,min=1,max=366"`
	IntervalCount   int               `json:"interval_count" binding:"omitempty,min=1"`
	AllocatedAmount int64             `json:"allocated_amount" binding:"omitempty,min=0"`
}

// CreateBudgetInput holds everything needed to create a budget atomically.
type CreateBudgetInput struct {
	Name             string
	Type             models.BudgetType
	Scope            models.BudgetScope
	EnforcementLevel models.EnforcementLevel
	Metadata         models.BudgetMetadata
	Period           PeriodTemplateInput
	Accounts         []AccountAssociation
	CategoryIDs      []string
}

// UpdateBudgetInput holds the mutable budget fields; nil means unchanged.
type UpdateBudgetInput struct {
	Name             *string
	EnforcementLevel *models.EnforcementLevel
	Metadata         *models.BudgetMetadata
	AllocatedAmount  *int64
}

// BudgetFilter holds optional filters for listing budgets.
type BudgetFilter struct {
	Status *models.BudgetStatus
	Type   *models.BudgetType
}

// BudgetProgress contains spending vs budget data for a budget's current period.
type BudgetProgress struct {
	BudgetID        string            `json:"budget_id"`
	PeriodID        string            `json:"period_id"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	Allocated       int64             `json:"allocated"`
	Rollover        int64             `json:"rollover"`
	TotalAvailable  int64             `json:"total_available"`
	Spent           int64             `json:"spent"`
	Remaining       int64             `json:"remaining"`
	Percentage      float64           `json:"percentage"`
	Utilization     UtilizationStatus `json:"utilization"`
	DeficitSeverity DeficitSeverity   `json:"deficit_severity"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(workspaceID string, in CreateBudgetInput) (*models.Budget, error)
	GetBudgetByID(workspaceID, budgetID string) (*models.Budget, error)
	GetWorkspaceBudgets(workspaceID string, page pagination.PageRequest, filter BudgetFilter) (*pagination.PageResponse[models.Budget], error)
	UpdateBudget(workspaceID, budgetID string, in UpdateBudgetInput) (*models.Budget, error)
	SetBudgetStatus(workspaceID, budgetID string, status models.BudgetStatus) (*models.Budget, error)
	DeleteBudget(workspaceID, budgetID string) error
	GetBudgetProgress(workspaceID, budgetID string) (*BudgetProgress, error)
	CreateBudgetWithDB(tx *gorm.DB, workspaceID string, in CreateBudgetInput) (*models.Budget, error)
}

// RecommendationDraft is a proposal handed over by the analysis that
// detected it.
type RecommendationDraft struct {
	Type       models.RecommendationType     `json:"type" binding:"required,recommendation_type"`
	Title      string                        `json:"title" binding:"max=200"`
	Priority   models.RecommendationPriority `json:"priority" binding:"omitempty,recommendation_priority"`
	Confidence int                           `json:"confidence" binding:"min=0,max=100"`
	AccountID  *string                       `json:"account_id" binding:"omitempty,uuid"`
	CategoryID *string                       `json:"category_id" binding:"omitempty,uuid"`
	Metadata   models.RecommendationMetadata `json:"metadata"`
	ExpiresAt  *time.Time                    `json:"expires_at"`
}

// ApplyResult lists everything created when a recommendation was applied.
type ApplyResult struct {
	Recommendation *models.BudgetRecommendation `json:"recommendation"`
	Budget         *models.Budget               `json:"budget"`
	Schedule       *models.Schedule             `json:"schedule,omitempty"`
	Allocations    []models.BudgetTransaction   `json:"allocations"`
}

// RecommendationServicer defines the contract for the recommendation lifecycle.
type RecommendationServicer interface {
	CreateRecommendation(workspaceID string, draft RecommendationDraft) (*models.BudgetRecommendation, bool, error)
	GetRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error)
	ListRecommendations(workspaceID string, status *models.RecommendationStatus, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetRecommendation], error)
	DismissRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error)
	RestoreRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error)
	ApplyRecommendation(workspaceID, recommendationID string) (*ApplyResult, error)
	ExpireStale() (int64, error)
	PurgeExpired() (int64, error)
}

// CreateTransactionInput holds a transaction handed over by entry or import.
type CreateTransactionInput struct {
	AccountID   string
	CategoryID  *string
	PayeeID     *string
	Amount      int64
	Description string
	Date        string
}

// TransactionResult pairs a stored transaction with its budget assignment.
type TransactionResult struct {
	Transaction *models.Transaction `json:"transaction"`
	Assignment  *AutoAssignResult   `json:"assignment"`
}

// TransactionServicer defines the contract for transaction entry.
type TransactionServicer interface {
	CreateTransaction(workspaceID string, in CreateTransactionInput) (*TransactionResult, error)
	GetTransactionByID(workspaceID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(workspaceID, transactionID string) error
}

// AccountServicer defines the contract for account registration.
type AccountServicer interface {
	CreateAccount(workspaceID, name string, accountType models.AccountType, currency string) (*models.Account, error)
	GetWorkspaceAccounts(workspaceID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(workspaceID, accountID string) (*models.Account, error)
}

// CategoryServicer defines the contract for categories and payees.
type CategoryServicer interface {
	CreateCategory(workspaceID, name string, categoryType models.CategoryType, parentID *string) (*models.Category, error)
	GetWorkspaceCategories(workspaceID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	CreatePayee(workspaceID, name string) (*models.Payee, error)
	GetWorkspacePayees(workspaceID string, page pagination.PageRequest) (*pagination.PageResponse[models.Payee], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(workspaceID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
