package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeCash       AccountType = "cash"
)

// Account is the workspace account a transaction is booked against. Budgets
// reference accounts through BudgetAccount rows; the account itself is owned
// by the surrounding application.
type Account struct {
	Base
	WorkspaceID string      `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Name        string      `gorm:"not null" json:"name"`
	Type        AccountType `gorm:"not null" json:"type"`
	Currency    string      `gorm:"not null;default:'USD'" json:"currency"`
	IsActive    bool        `gorm:"default:true" json:"is_active"`
}
