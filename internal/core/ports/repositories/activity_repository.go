package repositories

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// ActivityRepository appends and reads the audit feed. Entries are append-only.
type ActivityRepository interface {
	SaveActivity(ctx context.Context, activity domain.Activity) error
	// ListRecentActivities returns the newest entries first.
	ListRecentActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error)
}
