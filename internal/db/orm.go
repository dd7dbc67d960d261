package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "campus-spaces/registrar/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection used by all repositories.
func InitPostgresORM() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(postgresDSN()), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// Migrate creates or updates the schema for all entities. The unique
// indexes on members.email and (institution_id, student_id) on approvals
// are what turn concurrent duplicate writes into rejected inserts.
func Migrate(db *gorm.DB) error {
	// members.role is a Postgres ENUM; AutoMigrate emits the column with
	// that type but never creates it, so it must exist first.
	if db.Dialector.Name() == "postgres" {
		err := db.Exec(`DO $$ BEGIN
			CREATE TYPE member_role AS ENUM ('pending', 'student', 'moderator', 'admin');
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`).Error
		if err != nil {
			return fmt.Errorf("failed to create member_role type: %w", err)
		}
	}

	return db.AutoMigrate(
		&gormModels.Institution{},
		&gormModels.InstitutionAdmin{},
		&gormModels.Member{},
		&gormModels.MemberClub{},
		&gormModels.ApprovalRecord{},
		&gormModels.Event{},
	)
}
