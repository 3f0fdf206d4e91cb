package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category
type Category struct {
	Base
	WorkspaceID string       `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Name        string       `gorm:"not null" json:"name"`
	Type        CategoryType `gorm:"not null" json:"type"`
	ParentID    *string      `gorm:"type:uuid" json:"parent_id,omitempty"`
}

// Payee is the counterparty of a transaction.
type Payee struct {
	Base
	WorkspaceID string `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Name        string `gorm:"not null" json:"name"`
}
