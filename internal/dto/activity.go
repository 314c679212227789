package dto

import (
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// ActivityResponse is the public view of an audit feed entry.
type ActivityResponse struct {
	ActivityID   string    `json:"activityID"`
	Description  string    `json:"description"`
	ActivityType string    `json:"activityType"`
	RelatedID    *string   `json:"relatedID,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToActivityResponse converts a domain.Activity to its response DTO.
func ToActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ActivityID:   a.ActivityID,
		Description:  a.Description,
		ActivityType: string(a.ActivityType),
		RelatedID:    a.RelatedID,
		CreatedAt:    a.CreatedAt,
	}
}

// ToActivityListResponse converts a slice of activities.
func ToActivityListResponse(activities []domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i := range activities {
		out[i] = ToActivityResponse(&activities[i])
	}
	return out
}
