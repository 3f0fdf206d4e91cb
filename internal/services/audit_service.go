package services

import (
	"encoding/json"

	"budgetcore/internal/logger"
	"budgetcore/internal/models"

	"gorm.io/gorm"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and swallowed so the
// audited operation, which has already committed, is not reported as failed.
func (s *auditService) Log(workspaceID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	changesJSON := "{}"
	if changes != nil {
		if data, err := json.Marshal(changes); err != nil {
			logger.Get().Errorw("failed to marshal audit changes", "error", err, "action", action)
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		WorkspaceID:  workspaceID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to write audit entry",
			"error", err,
			"workspace_id", workspaceID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
