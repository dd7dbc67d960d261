package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is an institution-scoped campus event.
type Event struct {
	ID            string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	InstitutionID string    `gorm:"column:institution_id;type:varchar(64);not null;index"`
	Title         string    `gorm:"column:title;type:text;not null"`
	Description   string    `gorm:"column:description;type:text"`
	Category      string    `gorm:"column:category;type:varchar(32);not null"` // academic, social, sports, career
	StartsAt      time.Time `gorm:"column:starts_at;not null;index"`
	Time          string    `gorm:"column:time;type:varchar(16)"`
	Attendees     int       `gorm:"column:attendees;not null;default:0"`
	MaxAttendees  *int      `gorm:"column:max_attendees"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Institution Institution `gorm:"foreignKey:InstitutionID"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
