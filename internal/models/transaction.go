package models

// Transaction is a booked transaction. Amount is signed minor units:
// negative for outflows, positive for inflows. Allocations always use the
// absolute value.
type Transaction struct {
	Base
	WorkspaceID string  `gorm:"type:uuid;not null;index" json:"workspace_id"`
	AccountID   string  `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID  *string `gorm:"type:uuid;index" json:"category_id,omitempty"`
	PayeeID     *string `gorm:"type:uuid" json:"payee_id,omitempty"`
	ScheduleID  *string `gorm:"type:uuid" json:"schedule_id,omitempty"`
	Amount      int64   `gorm:"type:bigint;not null" json:"amount"`
	Description string  `json:"description"`
	Date        string  `gorm:"type:text;not null;index" json:"date"`
}

// AbsAmount returns the unsigned amount used for budget allocations.
func (t *Transaction) AbsAmount() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}
