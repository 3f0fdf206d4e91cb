package models

import "gorm.io/datatypes"

// BudgetType is the kind of spending rule a budget models.
type BudgetType string

const (
	BudgetTypeAccountMonthly   BudgetType = "account-monthly"
	BudgetTypeCategoryEnvelope BudgetType = "category-envelope"
	BudgetTypeGoalBased        BudgetType = "goal-based"
	BudgetTypeScheduledExpense BudgetType = "scheduled-expense"
)

// BudgetScope says which associations a budget is matched through.
type BudgetScope string

const (
	BudgetScopeAccount  BudgetScope = "account"
	BudgetScopeCategory BudgetScope = "category"
	BudgetScopeMixed    BudgetScope = "mixed"
)

// BudgetStatus represents the lifecycle state of a budget.
type BudgetStatus string

const (
	BudgetStatusActive   BudgetStatus = "active"
	BudgetStatusInactive BudgetStatus = "inactive"
	BudgetStatusArchived BudgetStatus = "archived"
)

// EnforcementLevel controls what happens when an allocation would overspend.
type EnforcementLevel string

const (
	EnforcementNone    EnforcementLevel = "none"
	EnforcementWarning EnforcementLevel = "warning"
	EnforcementStrict  EnforcementLevel = "strict"
)

// BudgetMetadata is the JSON blob stored alongside a budget. The scheduled
// expense fields are only set for BudgetTypeScheduledExpense.
type BudgetMetadata struct {
	AllocatedAmount  *int64 `json:"allocatedAmount,omitempty"`
	LinkedScheduleID string `json:"linkedScheduleId,omitempty"`
	ExpectedAmount   int64  `json:"expectedAmount,omitempty"`
	Frequency        string `json:"frequency,omitempty"`
	AutoTrack        bool   `json:"autoTrack,omitempty"`
}

// Budget is a named spending rule scoped to accounts and/or categories.
type Budget struct {
	Base
	WorkspaceID      string                             `gorm:"type:uuid;not null;index;uniqueIndex:idx_budget_workspace_slug" json:"workspace_id"`
	Name             string                             `gorm:"not null" json:"name"`
	Slug             string                             `gorm:"not null;uniqueIndex:idx_budget_workspace_slug" json:"slug"`
	Type             BudgetType                         `gorm:"not null" json:"type"`
	Scope            BudgetScope                        `gorm:"not null" json:"scope"`
	Status           BudgetStatus                       `gorm:"not null;default:'active'" json:"status"`
	EnforcementLevel EnforcementLevel                   `gorm:"not null;default:'warning'" json:"enforcement_level"`
	Metadata         datatypes.JSONType[BudgetMetadata] `json:"metadata"`

	// Relationships
	Template   *BudgetPeriodTemplate `gorm:"foreignKey:BudgetID" json:"template,omitempty"`
	Accounts   []BudgetAccount       `gorm:"foreignKey:BudgetID" json:"accounts,omitempty"`
	Categories []BudgetCategory      `gorm:"foreignKey:BudgetID" json:"categories,omitempty"`
}

// IsActive reports whether enforcement and auto-assignment apply to the budget.
func (b *Budget) IsActive() bool {
	return b.Status == BudgetStatusActive
}
