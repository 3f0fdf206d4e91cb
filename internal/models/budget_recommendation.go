package models

import (
	"time"

	"gorm.io/datatypes"
)

// RecommendationType is the action a recommendation proposes.
type RecommendationType string

const (
	RecommendationCreateBudget RecommendationType = "create_budget"
)

// RecommendationStatus is the lifecycle state of a recommendation.
type RecommendationStatus string

const (
	RecommendationPending   RecommendationStatus = "pending"
	RecommendationDismissed RecommendationStatus = "dismissed"
	RecommendationApplied   RecommendationStatus = "applied"
	RecommendationExpired   RecommendationStatus = "expired"
)

// RecommendationPriority ranks recommendations for display.
type RecommendationPriority string

const (
	PriorityLow    RecommendationPriority = "low"
	PriorityMedium RecommendationPriority = "medium"
	PriorityHigh   RecommendationPriority = "high"
)

// RecommendationMetadata carries the analysis that produced a recommendation.
type RecommendationMetadata struct {
	SuggestedType     BudgetType `json:"suggestedType,omitempty"`
	SuggestedAmount   int64      `json:"suggestedAmount,omitempty"`
	DetectedFrequency string     `json:"detectedFrequency,omitempty"`
	PayeeIDs          []string   `json:"payeeIds,omitempty"`
	TransactionIDs    []string   `json:"transactionIds,omitempty"`
}

// BudgetRecommendation is a system-proposed budget. BudgetID is only set while
// the recommendation is applied.
type BudgetRecommendation struct {
	Base
	WorkspaceID string                                     `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Type        RecommendationType                         `gorm:"not null" json:"type"`
	Title       string                                     `json:"title"`
	Priority    RecommendationPriority                     `gorm:"not null;default:'medium'" json:"priority"`
	Confidence  int                                        `gorm:"not null;default:0" json:"confidence"`
	Status      RecommendationStatus                       `gorm:"not null;default:'pending';index" json:"status"`
	AccountID   *string                                    `gorm:"type:uuid" json:"account_id,omitempty"`
	CategoryID  *string                                    `gorm:"type:uuid" json:"category_id,omitempty"`
	Metadata    datatypes.JSONType[RecommendationMetadata] `json:"metadata"`
	ExpiresAt   *time.Time                                 `json:"expires_at,omitempty"`
	DismissedAt *time.Time                                 `json:"dismissed_at,omitempty"`
	AppliedAt   *time.Time                                 `json:"applied_at,omitempty"`
	BudgetID    *string                                    `gorm:"type:uuid;index" json:"budget_id,omitempty"`
}
