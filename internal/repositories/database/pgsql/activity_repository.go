package pgsql

import (
	"context"
	"fmt"

	"github.com/invoiceflow/backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityRepository struct {
	BaseRepository
}

func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepository {
	return &PgxActivityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ActivityRepository = (*PgxActivityRepository)(nil)

// SaveActivity appends one feed entry. There is no update or delete path.
func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	query := `
		INSERT INTO activities (activity_id, user_id, description, activity_type, related_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		activity.ActivityID,
		activity.UserID,
		activity.Description,
		activity.ActivityType,
		activity.RelatedID,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity %s: %w", activity.ActivityID, err)
	}
	return nil
}

func (r *PgxActivityRepository) ListRecentActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	query := `
		SELECT activity_id, user_id, description, activity_type, related_id, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Activity, error) {
		var a domain.Activity
		err := row.Scan(
			&a.ActivityID,
			&a.UserID,
			&a.Description,
			&a.ActivityType,
			&a.RelatedID,
			&a.CreatedAt,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan activities: %w", err)
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}
