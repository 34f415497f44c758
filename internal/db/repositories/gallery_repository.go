package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new GORM-based gallery repository
func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// List returns gallery images, newest first, optionally filtered by album.
func (r *GalleryRepository) List(ctx context.Context, album string) ([]gormModels.GalleryImage, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if album != "" {
		q = q.Where("album = ?", album)
	}
	var images []gormModels.GalleryImage
	if err := q.Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

// GetByID retrieves one image record.
func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*gormModels.GalleryImage, error) {
	var image gormModels.GalleryImage
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch gallery image: %w", err)
	}
	return &image, nil
}

func (r *GalleryRepository) Create(ctx context.Context, image *gormModels.GalleryImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.GalleryImage{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete gallery image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
