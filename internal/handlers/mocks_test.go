package handlers

import (
	"gorm.io/gorm"

	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
	"budgetcore/internal/services"
)

// --- budgets ---

type mockBudgetService struct {
	createBudgetFn      func(workspaceID string, in services.CreateBudgetInput) (*models.Budget, error)
	getBudgetByIDFn     func(workspaceID, budgetID string) (*models.Budget, error)
	getBudgetsFn        func(workspaceID string, page pagination.PageRequest, filter services.BudgetFilter) (*pagination.PageResponse[models.Budget], error)
	updateBudgetFn      func(workspaceID, budgetID string, in services.UpdateBudgetInput) (*models.Budget, error)
	setBudgetStatusFn   func(workspaceID, budgetID string, status models.BudgetStatus) (*models.Budget, error)
	deleteBudgetFn      func(workspaceID, budgetID string) error
	getBudgetProgressFn func(workspaceID, budgetID string) (*services.BudgetProgress, error)
}

func (m *mockBudgetService) CreateBudget(workspaceID string, in services.CreateBudgetInput) (*models.Budget, error) {
	if m.createBudgetFn != nil {
		return m.createBudgetFn(workspaceID, in)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetByID(workspaceID, budgetID string) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(workspaceID, budgetID)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetWorkspaceBudgets(workspaceID string, page pagination.PageRequest, filter services.BudgetFilter) (*pagination.PageResponse[models.Budget], error) {
	if m.getBudgetsFn != nil {
		return m.getBudgetsFn(workspaceID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Budget{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockBudgetService) UpdateBudget(workspaceID, budgetID string, in services.UpdateBudgetInput) (*models.Budget, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(workspaceID, budgetID, in)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) SetBudgetStatus(workspaceID, budgetID string, status models.BudgetStatus) (*models.Budget, error) {
	if m.setBudgetStatusFn != nil {
		return m.setBudgetStatusFn(workspaceID, budgetID, status)
	}
	return &models.Budget{Status: status}, nil
}

func (m *mockBudgetService) DeleteBudget(workspaceID, budgetID string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(workspaceID, budgetID)
	}
	return nil
}

func (m *mockBudgetService) GetBudgetProgress(workspaceID, budgetID string) (*services.BudgetProgress, error) {
	if m.getBudgetProgressFn != nil {
		return m.getBudgetProgressFn(workspaceID, budgetID)
	}
	return &services.BudgetProgress{}, nil
}

func (m *mockBudgetService) CreateBudgetWithDB(_ *gorm.DB, workspaceID string, in services.CreateBudgetInput) (*models.Budget, error) {
	return m.CreateBudget(workspaceID, in)
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

// --- associations ---

type mockAssociationService struct {
	syncAccountsFn   func(workspaceID, budgetID string, accounts []services.AccountAssociation) ([]models.BudgetAccount, error)
	syncCategoriesFn func(workspaceID, budgetID string, categoryIDs []string) ([]models.BudgetCategory, error)
}

func (m *mockAssociationService) SyncAccounts(workspaceID, budgetID string, accounts []services.AccountAssociation) ([]models.BudgetAccount, error) {
	if m.syncAccountsFn != nil {
		return m.syncAccountsFn(workspaceID, budgetID, accounts)
	}
	return []models.BudgetAccount{}, nil
}

func (m *mockAssociationService) SyncCategories(workspaceID, budgetID string, categoryIDs []string) ([]models.BudgetCategory, error) {
	if m.syncCategoriesFn != nil {
		return m.syncCategoriesFn(workspaceID, budgetID, categoryIDs)
	}
	return []models.BudgetCategory{}, nil
}

func (m *mockAssociationService) SyncAccountsWithDB(_ *gorm.DB, workspaceID, budgetID string, accounts []services.AccountAssociation) ([]models.BudgetAccount, error) {
	return m.SyncAccounts(workspaceID, budgetID, accounts)
}

func (m *mockAssociationService) SyncCategoriesWithDB(_ *gorm.DB, workspaceID, budgetID string, categoryIDs []string) ([]models.BudgetCategory, error) {
	return m.SyncCategories(workspaceID, budgetID, categoryIDs)
}

var _ services.AssociationServicer = (*mockAssociationService)(nil)

// --- enforcement ---

type mockEnforcementService struct {
	checkAllocationFn func(workspaceID, budgetID string, amount int64, date string) (*services.EnforcementResult, error)
}

func (m *mockEnforcementService) CheckAllocation(workspaceID, budgetID string, amount int64, date string) (*services.EnforcementResult, error) {
	if m.checkAllocationFn != nil {
		return m.checkAllocationFn(workspaceID, budgetID, amount, date)
	}
	return &services.EnforcementResult{Decision: services.DecisionAllow}, nil
}

func (m *mockEnforcementService) EvaluateWithDB(_ *gorm.DB, budget *models.Budget, amount int64, _ string) (*services.EnforcementResult, error) {
	return &services.EnforcementResult{BudgetID: budget.ID, Proposed: amount, Decision: services.DecisionAllow}, nil
}

var _ services.EnforcementServicer = (*mockEnforcementService)(nil)

// --- allocations ---

type mockAllocationService struct {
	allocateFn          func(workspaceID string, req services.AllocationRequest) (*services.AllocationResult, error)
	splitFn             func(workspaceID, transactionID string, splits []services.SplitAllocation) ([]services.AllocationResult, error)
	coverageFn          func(workspaceID, transactionID string) (*services.AllocationCoverage, error)
	listFn              func(workspaceID, transactionID string) ([]models.BudgetTransaction, error)
	findApplicableFn    func(workspaceID string, accountID, categoryID *string) ([]string, error)
	autoAssignFn        func(workspaceID, transactionID string) (*services.AutoAssignResult, error)
	recalculateFn       func(workspaceID, budgetID, instanceID string) (int64, error)
	removeAllocationFn  func(workspaceID, allocationID string) error
	removeTransactionFn func(workspaceID, transactionID string) error
}

func (m *mockAllocationService) Allocate(workspaceID string, req services.AllocationRequest) (*services.AllocationResult, error) {
	if m.allocateFn != nil {
		return m.allocateFn(workspaceID, req)
	}
	return &services.AllocationResult{Allocation: &models.BudgetTransaction{}}, nil
}

func (m *mockAllocationService) SplitTransaction(workspaceID, transactionID string, splits []services.SplitAllocation) ([]services.AllocationResult, error) {
	if m.splitFn != nil {
		return m.splitFn(workspaceID, transactionID, splits)
	}
	return []services.AllocationResult{}, nil
}

func (m *mockAllocationService) SumAllocations(_, _ string) (int64, error) {
	return 0, nil
}

func (m *mockAllocationService) GetAllocationCoverage(workspaceID, transactionID string) (*services.AllocationCoverage, error) {
	if m.coverageFn != nil {
		return m.coverageFn(workspaceID, transactionID)
	}
	return &services.AllocationCoverage{TransactionID: transactionID}, nil
}

func (m *mockAllocationService) ListTransactionAllocations(workspaceID, transactionID string) ([]models.BudgetTransaction, error) {
	if m.listFn != nil {
		return m.listFn(workspaceID, transactionID)
	}
	return []models.BudgetTransaction{}, nil
}

func (m *mockAllocationService) FindApplicableBudgets(workspaceID string, accountID, categoryID *string) ([]string, error) {
	if m.findApplicableFn != nil {
		return m.findApplicableFn(workspaceID, accountID, categoryID)
	}
	return []string{}, nil
}

func (m *mockAllocationService) AutoAssign(workspaceID, transactionID string) (*services.AutoAssignResult, error) {
	if m.autoAssignFn != nil {
		return m.autoAssignFn(workspaceID, transactionID)
	}
	return &services.AutoAssignResult{}, nil
}

func (m *mockAllocationService) RecalculateActual(workspaceID, budgetID, instanceID string) (int64, error) {
	if m.recalculateFn != nil {
		return m.recalculateFn(workspaceID, budgetID, instanceID)
	}
	return 0, nil
}

func (m *mockAllocationService) RemoveAllocation(workspaceID, allocationID string) error {
	if m.removeAllocationFn != nil {
		return m.removeAllocationFn(workspaceID, allocationID)
	}
	return nil
}

func (m *mockAllocationService) RemoveTransactionAllocations(workspaceID, transactionID string) error {
	if m.removeTransactionFn != nil {
		return m.removeTransactionFn(workspaceID, transactionID)
	}
	return nil
}

func (m *mockAllocationService) AutoAssignWithDB(_ *gorm.DB, transaction *models.Transaction) (*services.AutoAssignResult, error) {
	return m.AutoAssign(transaction.WorkspaceID, transaction.ID)
}

func (m *mockAllocationService) RemoveTransactionAllocationsWithDB(_ *gorm.DB, transaction *models.Transaction) error {
	return m.RemoveTransactionAllocations(transaction.WorkspaceID, transaction.ID)
}

var _ services.AllocationServicer = (*mockAllocationService)(nil)

// --- periods ---

type mockPeriodService struct {
	listFn   func(workspaceID, budgetID string, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetPeriodInstance], error)
	createFn func(workspaceID, budgetID string, bounds services.PeriodBoundaries, allocated, rollover *int64) (*models.BudgetPeriodInstance, error)
	ensureFn func(workspaceID, budgetID, date string) (*models.BudgetPeriodInstance, error)
	getFn    func(workspaceID, instanceID string) (*models.BudgetPeriodInstance, error)
	closeFn  func(workspaceID, instanceID string) (*models.BudgetPeriodInstance, error)
}

func (m *mockPeriodService) GetTemplate(_, budgetID string) (*models.BudgetPeriodTemplate, error) {
	return &models.BudgetPeriodTemplate{BudgetID: budgetID}, nil
}

func (m *mockPeriodService) GetInstance(workspaceID, instanceID string) (*models.BudgetPeriodInstance, error) {
	if m.getFn != nil {
		return m.getFn(workspaceID, instanceID)
	}
	return &models.BudgetPeriodInstance{}, nil
}

func (m *mockPeriodService) ListInstances(workspaceID, budgetID string, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetPeriodInstance], error) {
	if m.listFn != nil {
		return m.listFn(workspaceID, budgetID, page)
	}
	resp := pagination.NewPageResponse([]models.BudgetPeriodInstance{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockPeriodService) CreatePeriodInstance(workspaceID, budgetID string, bounds services.PeriodBoundaries, allocated, rollover *int64) (*models.BudgetPeriodInstance, error) {
	if m.createFn != nil {
		return m.createFn(workspaceID, budgetID, bounds, allocated, rollover)
	}
	return &models.BudgetPeriodInstance{StartDate: bounds.StartDate, EndDate: bounds.EndDate}, nil
}

func (m *mockPeriodService) EnsureInstance(workspaceID, budgetID, date string) (*models.BudgetPeriodInstance, error) {
	if m.ensureFn != nil {
		return m.ensureFn(workspaceID, budgetID, date)
	}
	return &models.BudgetPeriodInstance{}, nil
}

func (m *mockPeriodService) ClosePeriod(workspaceID, instanceID string) (*models.BudgetPeriodInstance, error) {
	if m.closeFn != nil {
		return m.closeFn(workspaceID, instanceID)
	}
	return &models.BudgetPeriodInstance{}, nil
}

func (m *mockPeriodService) EnsureInstanceWithDB(_ *gorm.DB, _ *models.BudgetPeriodTemplate, _ string) (*models.BudgetPeriodInstance, error) {
	return &models.BudgetPeriodInstance{}, nil
}

func (m *mockPeriodService) FindInstanceWithDB(_ *gorm.DB, _, _ string) (*models.BudgetPeriodInstance, error) {
	return nil, nil
}

var _ services.PeriodServicer = (*mockPeriodService)(nil)

// --- recommendations ---

type mockRecommendationService struct {
	createFn  func(workspaceID string, draft services.RecommendationDraft) (*models.BudgetRecommendation, bool, error)
	getFn     func(workspaceID, recommendationID string) (*models.BudgetRecommendation, error)
	listFn    func(workspaceID string, status *models.RecommendationStatus, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetRecommendation], error)
	dismissFn func(workspaceID, recommendationID string) (*models.BudgetRecommendation, error)
	restoreFn func(workspaceID, recommendationID string) (*models.BudgetRecommendation, error)
	applyFn   func(workspaceID, recommendationID string) (*services.ApplyResult, error)
}

func (m *mockRecommendationService) CreateRecommendation(workspaceID string, draft services.RecommendationDraft) (*models.BudgetRecommendation, bool, error) {
	if m.createFn != nil {
		return m.createFn(workspaceID, draft)
	}
	return &models.BudgetRecommendation{}, true, nil
}

func (m *mockRecommendationService) GetRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error) {
	if m.getFn != nil {
		return m.getFn(workspaceID, recommendationID)
	}
	return &models.BudgetRecommendation{}, nil
}

func (m *mockRecommendationService) ListRecommendations(workspaceID string, status *models.RecommendationStatus, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetRecommendation], error) {
	if m.listFn != nil {
		return m.listFn(workspaceID, status, page)
	}
	resp := pagination.NewPageResponse([]models.BudgetRecommendation{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockRecommendationService) DismissRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error) {
	if m.dismissFn != nil {
		return m.dismissFn(workspaceID, recommendationID)
	}
	return &models.BudgetRecommendation{Status: models.RecommendationDismissed}, nil
}

func (m *mockRecommendationService) RestoreRecommendation(workspaceID, recommendationID string) (*models.BudgetRecommendation, error) {
	if m.restoreFn != nil {
		return m.restoreFn(workspaceID, recommendationID)
	}
	return &models.BudgetRecommendation{Status: models.RecommendationPending}, nil
}

func (m *mockRecommendationService) ApplyRecommendation(workspaceID, recommendationID string) (*services.ApplyResult, error) {
	if m.applyFn != nil {
		return m.applyFn(workspaceID, recommendationID)
	}
	return &services.ApplyResult{Recommendation: &models.BudgetRecommendation{}, Budget: &models.Budget{}}, nil
}

func (m *mockRecommendationService) ExpireStale() (int64, error) { return 0, nil }

func (m *mockRecommendationService) PurgeExpired() (int64, error) { return 0, nil }

var _ services.RecommendationServicer = (*mockRecommendationService)(nil)

// --- transactions ---

type mockTransactionService struct {
	createFn func(workspaceID string, in services.CreateTransactionInput) (*services.TransactionResult, error)
	getFn    func(workspaceID, transactionID string) (*models.Transaction, error)
	deleteFn func(workspaceID, transactionID string) error
}

func (m *mockTransactionService) CreateTransaction(workspaceID string, in services.CreateTransactionInput) (*services.TransactionResult, error) {
	if m.createFn != nil {
		return m.createFn(workspaceID, in)
	}
	return &services.TransactionResult{Transaction: &models.Transaction{}, Assignment: &services.AutoAssignResult{}}, nil
}

func (m *mockTransactionService) GetTransactionByID(workspaceID, transactionID string) (*models.Transaction, error) {
	if m.getFn != nil {
		return m.getFn(workspaceID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(workspaceID, transactionID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(workspaceID, transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- accounts, categories, payees ---

type mockAccountService struct {
	createFn func(workspaceID, name string, accountType models.AccountType, currency string) (*models.Account, error)
	getFn    func(workspaceID, accountID string) (*models.Account, error)
}

func (m *mockAccountService) CreateAccount(workspaceID, name string, accountType models.AccountType, currency string) (*models.Account, error) {
	if m.createFn != nil {
		return m.createFn(workspaceID, name, accountType, currency)
	}
	return &models.Account{WorkspaceID: workspaceID, Name: name, Type: accountType, Currency: currency}, nil
}

func (m *mockAccountService) GetWorkspaceAccounts(_ string, _ pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	resp := pagination.NewPageResponse([]models.Account{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAccountService) GetAccountByID(workspaceID, accountID string) (*models.Account, error) {
	if m.getFn != nil {
		return m.getFn(workspaceID, accountID)
	}
	return &models.Account{}, nil
}

var _ services.AccountServicer = (*mockAccountService)(nil)

type mockCategoryService struct {
	createCategoryFn func(workspaceID, name string, categoryType models.CategoryType, parentID *string) (*models.Category, error)
	createPayeeFn    func(workspaceID, name string) (*models.Payee, error)
}

func (m *mockCategoryService) CreateCategory(workspaceID, name string, categoryType models.CategoryType, parentID *string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(workspaceID, name, categoryType, parentID)
	}
	return &models.Category{WorkspaceID: workspaceID, Name: name, Type: categoryType, ParentID: parentID}, nil
}

func (m *mockCategoryService) GetWorkspaceCategories(_ string, _ pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	resp := pagination.NewPageResponse([]models.Category{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockCategoryService) CreatePayee(workspaceID, name string) (*models.Payee, error) {
	if m.createPayeeFn != nil {
		return m.createPayeeFn(workspaceID, name)
	}
	return &models.Payee{WorkspaceID: workspaceID, Name: name}, nil
}

func (m *mockCategoryService) GetWorkspacePayees(_ string, _ pagination.PageRequest) (*pagination.PageResponse[models.Payee], error) {
	resp := pagination.NewPageResponse([]models.Payee{}, 1, 20, 0)
	return &resp, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)
