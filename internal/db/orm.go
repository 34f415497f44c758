package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/config"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

// InitPostgresORM opens the GORM connection and migrates the content tables.
// Like InitPostgres, the handle is returned for injection rather than held in
// a package variable.
func InitPostgresORM(cfg config.PostgresConfig) (*gorm.DB, error) {
	orm, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := orm.AutoMigrate(
		&gormModels.TeamMember{},
		&gormModels.Event{},
		&gormModels.NewsPost{},
		&gormModels.GalleryImage{},
		&gormModels.MembershipApplication{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate content tables: %w", err)
	}

	return orm, nil
}
