package services

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// ActivitySvcFacade appends audit entries for completed business operations.
// Recording is fire-and-forget: failures are logged, never propagated, so a
// logging problem cannot fail the primary operation.
type ActivitySvcFacade interface {
	Record(ctx context.Context, userID string, activityType domain.ActivityType, description string, relatedID *string)
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.Activity, error)
}
