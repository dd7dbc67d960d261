package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Institution is the organizational tenant scoping members and leaderboards.
// Reference data: rows are seeded out-of-band and never mutated by the API.
type Institution struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	Name      string    `gorm:"column:name;type:text;not null"`
	Domain    string    `gorm:"column:domain;type:varchar(255);not null;uniqueIndex"`
	Icon      string    `gorm:"column:icon;type:varchar(16)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Institution) TableName() string {
	return "institutions"
}

func (i *Institution) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InstitutionAdmin authorizes an email address to approve students for one
// institution. The record match is the whole trust model for /admin/approve.
type InstitutionAdmin struct {
	ID            string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	InstitutionID string    `gorm:"column:institution_id;type:varchar(64);not null;uniqueIndex:idx_institution_admin,composite:institution_admin"`
	Email         string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_institution_admin,composite:institution_admin"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Institution Institution `gorm:"foreignKey:InstitutionID"`
}

// TableName specifies the table name for GORM
func (InstitutionAdmin) TableName() string {
	return "institution_admins"
}

func (a *InstitutionAdmin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
