package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceflow/backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/middleware"
)

const defaultActivityLimit = 20

type activityService struct {
	activityRepo portsrepo.ActivityRepository
}

// NewActivityService creates the audit feed service.
func NewActivityService(activityRepo portsrepo.ActivityRepository) portssvc.ActivitySvcFacade {
	return &activityService{activityRepo: activityRepo}
}

// Record appends an audit entry. Failures are logged and swallowed: the feed
// is a convenience view and must never fail the operation being recorded.
func (s *activityService) Record(ctx context.Context, userID string, activityType domain.ActivityType, description string, relatedID *string) {
	activity := domain.Activity{
		ActivityID:   uuid.NewString(),
		UserID:       userID,
		Description:  description,
		ActivityType: activityType,
		RelatedID:    relatedID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Error("Failed to record activity",
			slog.String("error", err.Error()),
			slog.String("user_id", userID),
			slog.String("activity_type", string(activityType)),
		)
	}
}

func (s *activityService) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	activities, err := s.activityRepo.ListRecentActivities(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}
	return activities, nil
}
