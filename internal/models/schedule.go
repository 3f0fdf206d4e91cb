package models

// ScheduleStatus represents the lifecycle state of a schedule.
type ScheduleStatus string

const (
	ScheduleStatusActive   ScheduleStatus = "active"
	ScheduleStatusInactive ScheduleStatus = "inactive"
)

// RecurrenceFrequency is the unit a schedule repeats in.
type RecurrenceFrequency string

const (
	FrequencyDaily   RecurrenceFrequency = "daily"
	FrequencyWeekly  RecurrenceFrequency = "weekly"
	FrequencyMonthly RecurrenceFrequency = "monthly"
	FrequencyYearly  RecurrenceFrequency = "yearly"
)

// Schedule is a recurring expected transaction. BudgetID points back at the
// scheduled-expense budget created alongside it, if any.
type Schedule struct {
	Base
	WorkspaceID string         `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"not null" json:"slug"`
	AccountID   *string        `gorm:"type:uuid" json:"account_id,omitempty"`
	PayeeID     *string        `gorm:"type:uuid" json:"payee_id,omitempty"`
	CategoryID  *string        `gorm:"type:uuid" json:"category_id,omitempty"`
	Amount      int64          `gorm:"type:bigint;not null" json:"amount"`
	AutoAdd     bool           `gorm:"not null;default:false" json:"auto_add"`
	Status      ScheduleStatus `gorm:"not null" json:"status"`
	BudgetID    *string        `gorm:"type:uuid;index" json:"budget_id,omitempty"`

	Recurrence *ScheduleRecurrence `gorm:"foreignKey:ScheduleID" json:"recurrence,omitempty"`
}

// ScheduleRecurrence describes how often a schedule repeats: every Interval
// units of Frequency starting at StartDate.
type ScheduleRecurrence struct {
	Base
	ScheduleID string              `gorm:"type:uuid;not null;uniqueIndex" json:"schedule_id"`
	Frequency  RecurrenceFrequency `gorm:"not null" json:"frequency"`
	Interval   int                 `gorm:"not null;default:1" json:"interval"`
	StartDate  string              `gorm:"type:text;not null" json:"start_date"`
}
