package repositories

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

// setupTestDB opens an isolated in-memory database with the same schema the
// server migrates at startup.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&gormModels.TeamMember{},
		&gormModels.Event{},
		&gormModels.NewsPost{},
		&gormModels.GalleryImage{},
		&gormModels.MembershipApplication{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}
