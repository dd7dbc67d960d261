package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "campus-spaces/registrar/internal/models/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new GORM-based event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListUpcomingByInstitution returns events starting at or after now,
// soonest first.
func (r *EventRepository) ListUpcomingByInstitution(ctx context.Context, institutionID string, now time.Time) ([]gormModels.Event, error) {
	var events []gormModels.Event

	err := r.db.WithContext(ctx).
		Where("institution_id = ? AND starts_at >= ?", institutionID, now).
		Order("starts_at ASC").
		Find(&events).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}
