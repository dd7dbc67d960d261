package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "campus-spaces/registrar/internal/models/gorm"
)

type ApprovalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository creates a new GORM-based approval repository
func NewApprovalRepository(db *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

// Exists reports whether an approval record exists for the pair
func (r *ApprovalRepository) Exists(ctx context.Context, institutionID, studentID string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.ApprovalRecord{}).
		Where("institution_id = ? AND student_id = ?", institutionID, studentID).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check approval record: %w", err)
	}

	return count > 0, nil
}

// InsertIfAbsent inserts an approval record, relying on ON CONFLICT DO
// NOTHING against the composite unique index. A duplicate insert is a
// no-op, which also settles the concurrent double-approve race at the
// store level.
func (r *ApprovalRepository) InsertIfAbsent(ctx context.Context, institutionID, studentID string) error {
	record := gormModels.ApprovalRecord{
		InstitutionID: institutionID,
		StudentID:     studentID,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "institution_id"}, {Name: "student_id"}},
			DoNothing: true,
		}).
		Create(&record).Error

	if err != nil {
		return fmt.Errorf("failed to insert approval record: %w", err)
	}

	return nil
}
