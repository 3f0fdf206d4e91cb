package models

import (
	"time"

	"budgetcore/internal/uuid"

	"gorm.io/gorm"
)

// DateLayout is the storage format for calendar dates (transaction and period dates).
const DateLayout = "2006-01-02"

// Base contains common columns for all tables
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All returns every model in migration order. Used by AutoMigrate for sqlite
// databases and by the test harness.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&Category{},
		&Payee{},
		&Schedule{},
		&ScheduleRecurrence{},
		&Transaction{},
		&Budget{},
		&BudgetPeriodTemplate{},
		&BudgetPeriodInstance{},
		&BudgetAccount{},
		&BudgetCategory{},
		&BudgetTransaction{},
		&BudgetRecommendation{},
		&AuditLog{},
	}
}
