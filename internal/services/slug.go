package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetcore/internal/errors"
)

// slugify lowercases name and collapses every run of characters outside
// [a-z0-9] into a single hyphen.
func slugify(name, fallback string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			hyphen = false
		case !hyphen && b.Len() > 0:
			b.WriteByte('-')
			hyphen = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return fallback
	}
	return slug
}

// uniqueSlug returns base, or base-2, base-3, ... whichever is first unused
// by model within the workspace.
func uniqueSlug(tx *gorm.DB, model interface{}, workspaceID, base string) (string, error) {
	candidate := base
	for n := 2; ; n++ {
		var count int64
		if err := tx.Model(model).Where("workspace_id = ? AND slug = ?", workspaceID, candidate).Count(&count).Error; err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
