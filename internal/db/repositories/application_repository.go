package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new GORM-based application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// List returns applications, optionally filtered by status, newest first.
func (r *ApplicationRepository) List(ctx context.Context, status constants.ApplicationStatus) ([]gormModels.MembershipApplication, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var apps []gormModels.MembershipApplication
	if err := q.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// GetByID retrieves one application.
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*gormModels.MembershipApplication, error) {
	var app gormModels.MembershipApplication
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return &app, nil
}

// ExistsByEmail reports whether an application with the given email exists.
// Used as the duplicate guard on public submission.
func (r *ApplicationRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.MembershipApplication{}).
		Where("email = ?", email).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check application email: %w", err)
	}
	return n > 0, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *gormModels.MembershipApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// UpdateStatus moves an application through review.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status constants.ApplicationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.MembershipApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update application status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.MembershipApplication{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
