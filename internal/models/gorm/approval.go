package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalRecord pre-authorizes a student identifier for automatic
// promotion to the student role. The composite unique index makes the
// approve operation an idempotent insert.
type ApprovalRecord struct {
	ID            string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	InstitutionID string    `gorm:"column:institution_id;type:varchar(64);not null;uniqueIndex:idx_approval_institution_student,composite:approval"`
	StudentID     string    `gorm:"column:student_id;type:varchar(64);not null;uniqueIndex:idx_approval_institution_student,composite:approval"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Institution Institution `gorm:"foreignKey:InstitutionID"`
}

// TableName specifies the table name for GORM
func (ApprovalRecord) TableName() string {
	return "approval_records"
}

func (a *ApprovalRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
