package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"campus-spaces/registrar/internal/constants"
	gormModels "campus-spaces/registrar/internal/models/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new GORM-based member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetByID retrieves a member with club memberships preloaded. Returns
// (nil, nil) when the member does not exist.
func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (*gormModels.Member, error) {
	var member gormModels.Member

	err := r.db.WithContext(ctx).
		Preload("Clubs").
		Where("id = ?", memberID).
		First(&member).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	return &member, nil
}

// GetByEmail retrieves a member by email without relationships. Returns
// (nil, nil) when no member uses the email.
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*gormModels.Member, error) {
	var member gormModels.Member

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&member).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch member by email: %w", err)
	}

	return &member, nil
}

// Create inserts a new member. A unique-violation on members.email is
// reported via IsDuplicateKey so the service can map it to a conflict.
func (r *MemberRepository) Create(ctx context.Context, member *gormModels.Member) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// SetRoleByStudent transitions the role of the member identified by
// (institutionID, studentID). Returns the number of rows updated; zero
// means no such member is registered yet, which is not an error for the
// approval flow.
func (r *MemberRepository) SetRoleByStudent(ctx context.Context, institutionID, studentID string, role constants.MemberRole) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Member{}).
		Where("institution_id = ? AND student_id = ?", institutionID, studentID).
		Update("role", role)

	if res.Error != nil {
		return 0, fmt.Errorf("failed to update member role: %w", res.Error)
	}

	return res.RowsAffected, nil
}

// ListStudentsByInstitution returns students of one institution in
// insertion order. The leaderboard tie-break depends on this ordering.
func (r *MemberRepository) ListStudentsByInstitution(ctx context.Context, institutionID string) ([]gormModels.Member, error) {
	var members []gormModels.Member

	err := r.db.WithContext(ctx).
		Where("institution_id = ? AND role = ?", institutionID, constants.RoleStudent).
		Order("created_at ASC").
		Order("id ASC").
		Find(&members).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return members, nil
}

// UpdateFields applies a column->value map to one member row
func (r *MemberRepository) UpdateFields(ctx context.Context, memberID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&gormModels.Member{}).
		Where("id = ?", memberID).
		Updates(fields).Error

	if err != nil {
		return fmt.Errorf("failed to update member fields: %w", err)
	}

	return nil
}

// ReplaceClubs swaps the member's club memberships for the provided set in
// one transaction (delete-all-then-insert, not a merge).
func (r *MemberRepository) ReplaceClubs(ctx context.Context, memberID string, clubIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", memberID).Delete(&gormModels.MemberClub{}).Error; err != nil {
			return fmt.Errorf("failed to clear club memberships: %w", err)
		}

		for _, clubID := range clubIDs {
			membership := gormModels.MemberClub{
				MemberID: memberID,
				ClubID:   clubID,
			}
			if err := tx.Create(&membership).Error; err != nil {
				return fmt.Errorf("failed to insert club membership: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to replace clubs: %w", err)
	}

	return nil
}

// HasClub reports whether the member holds a membership row for clubID
func (r *MemberRepository) HasClub(ctx context.Context, memberID, clubID string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.MemberClub{}).
		Where("member_id = ? AND club_id = ?", memberID, clubID).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check club membership: %w", err)
	}

	return count > 0, nil
}

// IsDuplicateKey reports whether err is a store-level uniqueness violation.
// Covers Postgres (pq 23505), the GORM translated error, and the SQLite
// driver used in tests.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value")
}
