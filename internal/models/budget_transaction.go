package models

// AssignmentSource records how an allocation came to exist.
type AssignmentSource string

const (
	AssignedManual         AssignmentSource = "manual"
	AssignedCategoryMatch  AssignmentSource = "category-match"
	AssignedAccountMatch   AssignmentSource = "account-match"
	AssignedScheduleMatch  AssignmentSource = "schedule-match"
	AssignedRecommendation AssignmentSource = "recommendation"
	AssignedImport         AssignmentSource = "import"
)

// BudgetTransaction allocates (part of) a transaction to a budget. A
// transaction split across budgets has one row per budget.
type BudgetTransaction struct {
	Base
	TransactionID   string           `gorm:"type:uuid;not null;index" json:"transaction_id"`
	BudgetID        string           `gorm:"type:uuid;not null;index" json:"budget_id"`
	AllocatedAmount int64            `gorm:"type:bigint;not null" json:"allocated_amount"`
	AutoAssigned    bool             `gorm:"not null;default:false" json:"auto_assigned"`
	AssignedBy      AssignmentSource `gorm:"not null;default:'manual'" json:"assigned_by"`
}
