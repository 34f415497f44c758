package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new GORM-based team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// ListAll returns every member, highest priority first.
func (r *TeamMemberRepository) ListAll(ctx context.Context) ([]gormModels.TeamMember, error) {
	var members []gormModels.TeamMember
	err := r.db.WithContext(ctx).
		Order("priority DESC, created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

// GetByID retrieves one member.
func (r *TeamMemberRepository) GetByID(ctx context.Context, id string) (*gormModels.TeamMember, error) {
	var member gormModels.TeamMember
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch team member: %w", err)
	}
	return &member, nil
}

// Create inserts a member and fills generated fields.
func (r *TeamMemberRepository) Create(ctx context.Context, member *gormModels.TeamMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

// Update saves the full record. The column list is explicit so zero values
// (priority 0, cleared bio or links) persist; a bare struct update would
// skip them.
func (r *TeamMemberRepository) Update(ctx context.Context, member *gormModels.TeamMember) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.TeamMember{}).
		Where("id = ?", member.ID).
		Select("name", "role", "role_key", "bio", "photo_url", "priority",
			"affiliation", "chapter", "email", "linkedin_url", "facebook_url", "github_url").
		Updates(member)
	if res.Error != nil {
		return fmt.Errorf("failed to update team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a member by ID.
func (r *TeamMemberRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.TeamMember{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the member total for the business gauge.
func (r *TeamMemberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&gormModels.TeamMember{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return n, nil
}
