package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new GORM-based news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// ListPublished returns published posts, newest first.
func (r *NewsRepository) ListPublished(ctx context.Context) ([]gormModels.NewsPost, error) {
	var posts []gormModels.NewsPost
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list published news: %w", err)
	}
	return posts, nil
}

// ListAll returns every post, drafts included, for the admin console.
func (r *NewsRepository) ListAll(ctx context.Context) ([]gormModels.NewsPost, error) {
	var posts []gormModels.NewsPost
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return posts, nil
}

// GetBySlug retrieves one post by its URL slug.
func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*gormModels.NewsPost, error) {
	var post gormModels.NewsPost
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch news post: %w", err)
	}
	return &post, nil
}

func (r *NewsRepository) Create(ctx context.Context, post *gormModels.NewsPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create news post: %w", err)
	}
	return nil
}

func (r *NewsRepository) Update(ctx context.Context, post *gormModels.NewsPost) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.NewsPost{}).
		Where("id = ?", post.ID).
		Select("title", "slug", "body", "cover_url", "published").
		Updates(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update news post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.NewsPost{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete news post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
