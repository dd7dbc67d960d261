package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-spaces/registrar/internal/constants"
)

// Member is a registered person within an institution. Role starts as
// pending or student depending on pre-approval and is only ever changed by
// admin action. The unique index on email enforces registration uniqueness
// at the store level.
type Member struct {
	ID            string               `gorm:"column:id;primaryKey;type:varchar(64)"`
	Name          string               `gorm:"column:name;type:text;not null"`
	Email         string               `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	StudentID     string               `gorm:"column:student_id;type:varchar(64);not null;index:idx_member_institution_student"`
	InstitutionID string               `gorm:"column:institution_id;type:varchar(64);not null;index;index:idx_member_institution_student"`
	Role          constants.MemberRole `gorm:"column:role;type:member_role;not null"`
	EmojiTag      string               `gorm:"column:emoji_tag;type:varchar(16)"`
	AcademicScore int                  `gorm:"column:academic_score;not null;default:0"`
	SportsScore   int                  `gorm:"column:sports_score;not null;default:0"`
	PasswordHash  string               `gorm:"column:password_hash;type:text;not null"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Institution Institution  `gorm:"foreignKey:InstitutionID"`
	Clubs       []MemberClub `gorm:"foreignKey:MemberID"`
}

// TableName specifies the table name for GORM
func (Member) TableName() string {
	return "members"
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MemberClub links a member to a club. Club IDs carry the owning
// institution as a prefix: "institutionId::clubName".
type MemberClub struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	MemberID  string    `gorm:"column:member_id;type:varchar(64);not null;uniqueIndex:idx_member_club,composite:member_club"`
	ClubID    string    `gorm:"column:club_id;type:varchar(255);not null;uniqueIndex:idx_member_club,composite:member_club"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Member Member `gorm:"foreignKey:MemberID"`
}

// TableName specifies the table name for GORM
func (MemberClub) TableName() string {
	return "member_clubs"
}

func (c *MemberClub) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
