package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "campus-spaces/registrar/internal/models/gorm"
)

type InstitutionRepository struct {
	db *gorm.DB
}

// NewInstitutionRepository creates a new GORM-based institution repository
func NewInstitutionRepository(db *gorm.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

// GetByID retrieves an institution by its ID. Returns (nil, nil) when the
// institution does not exist so callers can decide the error semantics.
func (r *InstitutionRepository) GetByID(ctx context.Context, institutionID string) (*gormModels.Institution, error) {
	var institution gormModels.Institution

	err := r.db.WithContext(ctx).
		Where("id = ?", institutionID).
		First(&institution).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch institution: %w", err)
	}

	return &institution, nil
}

// List returns all institutions ordered by name
func (r *InstitutionRepository) List(ctx context.Context) ([]gormModels.Institution, error) {
	var institutions []gormModels.Institution

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&institutions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}

	return institutions, nil
}

// ListIDs returns the IDs of all institutions. Used by the leaderboard
// cache worker to fan out refreshes.
func (r *InstitutionRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string

	err := r.db.WithContext(ctx).
		Model(&gormModels.Institution{}).
		Pluck("id", &ids).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list institution ids: %w", err)
	}

	return ids, nil
}

// IsAdmin reports whether an admin record exists for (institutionID, email)
func (r *InstitutionRepository) IsAdmin(ctx context.Context, institutionID, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.InstitutionAdmin{}).
		Where("institution_id = ? AND email = ?", institutionID, email).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check admin record: %w", err)
	}

	return count > 0, nil
}
