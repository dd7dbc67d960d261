package services

import (
	"context"
	"testing"
	"time"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	gormModels "campus-spaces/registrar/internal/models/gorm"
)

func TestClubService_HasAccess(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")
	memberID := seedStudent(t, db, "123", "alice", 10, 20, time.Now())

	club := gormModels.MemberClub{MemberID: memberID, ClubID: "123::tech"}
	if err := db.Create(&club).Error; err != nil {
		t.Fatalf("Failed to seed club: %v", err)
	}

	service := NewClubService(repositories.NewMemberRepository(db))

	resp, err := service.HasAccess(context.Background(), memberID, "123::tech")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !resp.HasAccess {
		t.Error("Expected access to joined club")
	}

	// Member of the institution but not of the club
	resp, err = service.HasAccess(context.Background(), memberID, "123::music")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.HasAccess {
		t.Error("Expected no access to club without membership")
	}

	// Club of another institution: denied even with a membership row name clash
	resp, err = service.HasAccess(context.Background(), memberID, "456::tech")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.HasAccess {
		t.Error("Expected no access across institutions")
	}
}

func TestClubService_HasAccess_MemberNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewClubService(repositories.NewMemberRepository(db))

	_, err := service.HasAccess(context.Background(), "missing", "123::tech")
	if err == nil {
		t.Fatal("Expected error for unknown member")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeNotFound {
		t.Errorf("Expected not-found error, got %v", err)
	}
}
