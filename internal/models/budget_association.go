package models

// AssociationType describes the role an account plays in a budget.
type AssociationType string

const (
	AssociationSpending AssociationType = "spending"
	AssociationSource   AssociationType = "source"
	AssociationSavings  AssociationType = "savings"
)

// BudgetAccount links a budget to an account.
type BudgetAccount struct {
	Base
	BudgetID        string          `gorm:"type:uuid;not null;uniqueIndex:idx_budget_account" json:"budget_id"`
	AccountID       string          `gorm:"type:uuid;not null;uniqueIndex:idx_budget_account;index" json:"account_id"`
	AssociationType AssociationType `gorm:"not null;default:'spending'" json:"association_type"`
}

// BudgetCategory links a budget to a category.
type BudgetCategory struct {
	Base
	BudgetID   string `gorm:"type:uuid;not null;uniqueIndex:idx_budget_category" json:"budget_id"`
	CategoryID string `gorm:"type:uuid;not null;uniqueIndex:idx_budget_category;index" json:"category_id"`
}
