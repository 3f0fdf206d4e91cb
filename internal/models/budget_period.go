package models

// PeriodType is the recurrence rule a period template follows.
type PeriodType string

const (
	PeriodWeekly    PeriodType = "weekly"
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYearly    PeriodType = "yearly"
	PeriodCustom    PeriodType = "custom"
)

// BudgetPeriodTemplate drives the recurring sequence of period instances for
// a budget. Only the anchor fields relevant to Type are read.
type BudgetPeriodTemplate struct {
	Base
	BudgetID        string     `gorm:"type:uuid;not null;uniqueIndex" json:"budget_id"`
	Type            PeriodType `gorm:"not null" json:"type"`
	StartDayOfMonth int        `gorm:"not null;default:1" json:"start_day_of_month"`
	StartDayOfWeek  int        `gorm:"not null;default:0" json:"start_day_of_week"`
	StartDayOfYear  int        `gorm:"not null;default:1" json:"start_day_of_year"`
	IntervalCount   int        `gorm:"not null;default:0" json:"interval_count"`
	AllocatedAmount int64      `gorm:"type:bigint;not null;default:0" json:"allocated_amount"`
}

// BudgetPeriodInstance is one dated window of a template. StartDate and
// EndDate are inclusive YYYY-MM-DD strings.
type BudgetPeriodInstance struct {
	Base
	TemplateID      string `gorm:"type:uuid;not null;index" json:"template_id"`
	StartDate       string `gorm:"type:text;not null;index" json:"start_date"`
	EndDate         string `gorm:"type:text;not null" json:"end_date"`
	AllocatedAmount int64  `gorm:"type:bigint;not null;default:0" json:"allocated_amount"`
	RolloverAmount  int64  `gorm:"type:bigint;not null;default:0" json:"rollover_amount"`
	ActualAmount    int64  `gorm:"type:bigint;not null;default:0" json:"actual_amount"`
}

// TotalAvailable is the effective budget for the period. It is negative when
// a carried-in deficit exceeds the allocation.
func (p *BudgetPeriodInstance) TotalAvailable() int64 {
	return p.AllocatedAmount + p.RolloverAmount
}

// Remaining is what can still be spent in the period.
func (p *BudgetPeriodInstance) Remaining() int64 {
	return p.TotalAvailable() - p.ActualAmount
}

// Contains reports whether date (YYYY-MM-DD) falls inside the period.
func (p *BudgetPeriodInstance) Contains(date string) bool {
	return date >= p.StartDate && date <= p.EndDate
}
