package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	gormModels "campus-spaces/registrar/internal/models/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB, institutionID, email string) {
	admin := gormModels.InstitutionAdmin{
		InstitutionID: institutionID,
		Email:         email,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}
}

func newApprovalService(db *gorm.DB) *ApprovalService {
	return NewApprovalService(
		repositories.NewInstitutionRepository(db),
		repositories.NewMemberRepository(db),
		repositories.NewApprovalRepository(db),
	)
}

func TestApprovalService_Approve_NotAdmin(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")

	service := newApprovalService(db)

	_, err := service.Approve(context.Background(), "stranger@college.edu", "123", "S1001")
	if err == nil {
		t.Fatal("Expected error for non-admin caller")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeUnauthorized {
		t.Errorf("Expected unauthorized error, got %v", err)
	}
}

func TestApprovalService_Approve_BeforeRegistration(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")
	seedAdmin(t, db, "123", "admin@example.com")

	service := newApprovalService(db)

	// No member registered yet: approval still succeeds
	resp, err := service.Approve(context.Background(), "admin@example.com", "123", "S1001")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !resp.Success {
		t.Error("Expected success acknowledgement")
	}

	var count int64
	db.Model(&gormModels.ApprovalRecord{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected one approval record, got %d", count)
	}

	// The record now drives registration role resolution
	regService := newRegistrationService(db)
	regResp, err := regService.Register(context.Background(), "Alice", "alice@college.edu", "123", "S1001", "pw", "")
	if err != nil {
		t.Fatalf("Registration failed: %v", err)
	}
	if regResp.Role != constants.RoleStudent {
		t.Errorf("Expected pre-approved registration role student, got %s", regResp.Role)
	}
}

func TestApprovalService_Approve_PromotesExistingMember(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")
	seedAdmin(t, db, "123", "admin@example.com")

	regService := newRegistrationService(db)
	regResp, err := regService.Register(context.Background(), "Alice", "alice@college.edu", "123", "S1001", "pw", "")
	if err != nil {
		t.Fatalf("Registration failed: %v", err)
	}
	if regResp.Role != constants.RolePending {
		t.Fatalf("Expected initial role pending, got %s", regResp.Role)
	}

	service := newApprovalService(db)
	if _, err := service.Approve(context.Background(), "admin@example.com", "123", "S1001"); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	var member gormModels.Member
	if err := db.Where("id = ?", regResp.MemberID).First(&member).Error; err != nil {
		t.Fatalf("Member not found: %v", err)
	}
	if member.Role != constants.RoleStudent {
		t.Errorf("Expected role student after approval, got %s", member.Role)
	}
}

func TestApprovalService_Approve_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")
	seedAdmin(t, db, "123", "admin@example.com")

	service := newApprovalService(db)

	if _, err := service.Approve(context.Background(), "admin@example.com", "123", "S1001"); err != nil {
		t.Fatalf("First approve failed: %v", err)
	}
	if _, err := service.Approve(context.Background(), "admin@example.com", "123", "S1001"); err != nil {
		t.Fatalf("Second approve should be a no-op, got %v", err)
	}

	var count int64
	db.Model(&gormModels.ApprovalRecord{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly one approval record, got %d", count)
	}
}

func TestApprovalService_Approve_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	service := newApprovalService(db)

	_, err := service.Approve(context.Background(), "", "123", "S1001")
	if err == nil {
		t.Fatal("Expected error for missing admin email")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeValidation {
		t.Errorf("Expected validation error, got %v", err)
	}
}
