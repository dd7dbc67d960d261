package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gorm.io/gorm"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	gormModels "campus-spaces/registrar/internal/models/gorm"
)

func newMemberService(db *gorm.DB) *MemberService {
	return NewMemberService(repositories.NewMemberRepository(db))
}

func rawFields(t *testing.T, fields map[string]interface{}) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Failed to marshal field %s: %v", k, err)
		}
		out[k] = b
	}
	return out
}

func TestMemberService_Update_AllowedFields(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")
	memberID := seedStudent(t, db, "123", "alice", 10, 20, time.Now())

	service := newMemberService(db)

	resp, err := service.Update(context.Background(), memberID, rawFields(t, map[string]interface{}{
		"name":          "Alice Prime",
		"emojiTag":      "🏆",
		"academicScore": 95,
		"sportsScore":   40,
	}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Member.Name != "Alice Prime" {
		t.Errorf("Expected updated name, got %s", resp.Member.Name)
	}
	if resp.Member.EmojiTag != "🏆" {
		t.Errorf("Expected updated emoji tag, got %s", resp.Member.EmojiTag)
	}
	if resp.Member.AcademicScore != 95 || resp.Member.SportsScore != 40 {
		t.Errorf("Expected updated scores, got %d/%d", resp.Member.AcademicScore, resp.Member.SportsScore)
	}

	// Role untouched by self-service updates
	if resp.Member.Role != constants.RoleStudent {
		t.Errorf("Expected role unchanged, got %s", resp.Member.Role)
	}
}

func TestMemberService_Update_UnknownFieldsIgnored(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")
	memberID := seedStudent(t, db, "123", "alice", 10, 20, time.Now())

	service := newMemberService(db)

	resp, err := service.Update(context.Background(), memberID, rawFields(t, map[string]interface{}{
		"role":      "admin", // not on the allow-list
		"studentId": "S9999",
		"name":      "Alice Prime",
	}))
	if err != nil {
		t.Fatalf("Unknown fields must be ignored, got %v", err)
	}

	if resp.Member.Role != constants.RoleStudent {
		t.Errorf("Role must not be updatable, got %s", resp.Member.Role)
	}
	if resp.Member.StudentID == "S9999" {
		t.Error("Student ID must not be updatable")
	}
	if resp.Member.Name != "Alice Prime" {
		t.Errorf("Allow-listed field skipped, got %s", resp.Member.Name)
	}
}

func TestMemberService_Update_ClubsFullReplace(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")
	memberID := seedStudent(t, db, "123", "alice", 10, 20, time.Now())

	for _, clubID := range []string{"123::tech", "123::music"} {
		club := gormModels.MemberClub{MemberID: memberID, ClubID: clubID}
		if err := db.Create(&club).Error; err != nil {
			t.Fatalf("Failed to seed club: %v", err)
		}
	}

	service := newMemberService(db)

	resp, err := service.Update(context.Background(), memberID, rawFields(t, map[string]interface{}{
		"clubs": []string{"123::sports"},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(resp.Member.Clubs) != 1 || resp.Member.Clubs[0] != "123::sports" {
		t.Errorf("Expected clubs replaced with [123::sports], got %v", resp.Member.Clubs)
	}

	var count int64
	db.Model(&gormModels.MemberClub{}).Where("member_id = ?", memberID).Count(&count)
	if count != 1 {
		t.Errorf("Expected one membership row, got %d", count)
	}
}

func TestMemberService_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newMemberService(db)

	_, err := service.Update(context.Background(), "missing", rawFields(t, map[string]interface{}{
		"name": "Nobody",
	}))
	if err == nil {
		t.Fatal("Expected error for unknown member")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeNotFound {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestMemberService_Get(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")
	memberID := seedStudent(t, db, "123", "alice", 10, 20, time.Now())

	service := newMemberService(db)

	resp, err := service.Get(context.Background(), memberID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Member.ID != memberID || resp.Member.Name != "alice" {
		t.Errorf("Unexpected member: %+v", resp.Member)
	}

	if _, err := service.Get(context.Background(), "missing"); err == nil {
		t.Error("Expected not-found for unknown member")
	}
}
