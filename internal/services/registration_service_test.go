package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	gormModels "campus-spaces/registrar/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	err = db.AutoMigrate(
		&gormModels.Institution{},
		&gormModels.InstitutionAdmin{},
		&gormModels.Member{},
		&gormModels.MemberClub{},
		&gormModels.ApprovalRecord{},
		&gormModels.Event{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func seedInstitution(t *testing.T, db *gorm.DB, id, domain string) {
	institution := gormModels.Institution{
		ID:     id,
		Name:   "Test College",
		Domain: domain,
	}
	if err := db.Create(&institution).Error; err != nil {
		t.Fatalf("Failed to seed institution: %v", err)
	}
}

func newRegistrationService(db *gorm.DB) *RegistrationService {
	return NewRegistrationService(
		repositories.NewInstitutionRepository(db),
		repositories.NewMemberRepository(db),
		repositories.NewApprovalRepository(db),
	)
}

func TestRegistrationService_Register_PendingWithoutApproval(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")

	service := newRegistrationService(db)

	resp, err := service.Register(context.Background(), "Alice", "alice@college.edu", "123", "S1001", "pw", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Role != constants.RolePending {
		t.Errorf("Expected role pending, got %s", resp.Role)
	}

	if resp.MemberID == "" {
		t.Error("Expected a member ID")
	}

	// Verify member was created in database
	var member gormModels.Member
	if err := db.Where("email = ?", "alice@college.edu").First(&member).Error; err != nil {
		t.Fatalf("Member not found in database: %v", err)
	}

	if member.Role != constants.RolePending {
		t.Errorf("Expected stored role pending, got %s", member.Role)
	}

	if member.EmojiTag == "" {
		t.Error("Expected a default emoji tag")
	}

	// Password must be stored hashed, never plain
	if member.PasswordHash == "pw" {
		t.Error("Password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte("pw")); err != nil {
		t.Errorf("Stored hash does not verify: %v", err)
	}
}

func TestRegistrationService_Register_StudentWithApproval(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")

	approval := gormModels.ApprovalRecord{InstitutionID: "123", StudentID: "S1001"}
	if err := db.Create(&approval).Error; err != nil {
		t.Fatalf("Failed to seed approval: %v", err)
	}

	service := newRegistrationService(db)

	resp, err := service.Register(context.Background(), "Alice", "alice@college.edu", "123", "S1001", "pw", "🏆")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Role != constants.RoleStudent {
		t.Errorf("Expected role student, got %s", resp.Role)
	}
}

func TestRegistrationService_Register_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	service := newRegistrationService(db)

	_, err := service.Register(context.Background(), "Alice", "", "123", "S1001", "pw", "")
	if err == nil {
		t.Fatal("Expected error for missing email")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeValidation {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestRegistrationService_Register_InstitutionNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newRegistrationService(db)

	_, err := service.Register(context.Background(), "Alice", "alice@college.edu", "missing", "S1001", "pw", "")
	if err == nil {
		t.Fatal("Expected error for unknown institution")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeNotFound {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestRegistrationService_Register_DomainMismatch(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")

	service := newRegistrationService(db)

	_, err := service.Register(context.Background(), "Alice", "x@wrong.com", "123", "S1001", "pw", "")
	if err == nil {
		t.Fatal("Expected error for domain mismatch")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeDomainMismatch {
		t.Errorf("Expected domain mismatch error, got %v", err)
	}

	// Nothing persisted
	var count int64
	db.Model(&gormModels.Member{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no members, got %d", count)
	}
}

func TestRegistrationService_Register_MultipleAtSignsRejected(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")

	service := newRegistrationService(db)

	// Only the segment after the first '@' counts as the domain
	_, err := service.Register(context.Background(), "Alice", "a@b@college.edu", "123", "S1001", "pw", "")
	if err == nil {
		t.Fatal("Expected error for email with multiple '@'")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeDomainMismatch {
		t.Errorf("Expected domain mismatch error, got %v", err)
	}
}

func TestRegistrationService_Register_DomainMatchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "College.EDU")

	service := newRegistrationService(db)

	_, err := service.Register(context.Background(), "Alice", "alice@mail.COLLEGE.edu", "123", "S1001", "pw", "")
	if err != nil {
		t.Fatalf("Expected subdomain + mixed case to match, got %v", err)
	}
}

func TestRegistrationService_Register_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	seedInstitution(t, db, "123", "college.edu")

	service := newRegistrationService(db)

	first, err := service.Register(context.Background(), "Alice", "alice@college.edu", "123", "S1001", "pw", "")
	if err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	_, err = service.Register(context.Background(), "Alice Again", "alice@college.edu", "123", "S1002", "pw2", "")
	if err == nil {
		t.Fatal("Expected conflict on duplicate email")
	}

	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != constants.ErrCodeConflict {
		t.Errorf("Expected conflict error, got %v", err)
	}

	// First record unchanged
	var member gormModels.Member
	if err := db.Where("email = ?", "alice@college.edu").First(&member).Error; err != nil {
		t.Fatalf("Member not found: %v", err)
	}
	if member.ID != first.MemberID || member.Name != "Alice" || member.StudentID != "S1001" {
		t.Errorf("First member record was modified: %+v", member)
	}

	var count int64
	db.Model(&gormModels.Member{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly one member, got %d", count)
	}
}
