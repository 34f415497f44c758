package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new GORM-based event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListUpcoming returns events that have not ended yet, soonest first.
func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]gormModels.Event, error) {
	var events []gormModels.Event
	err := r.db.WithContext(ctx).
		Where("ends_at >= ?", now).
		Order("starts_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return events, nil
}

// ListPast returns finished events, most recent first.
func (r *EventRepository) ListPast(ctx context.Context, now time.Time) ([]gormModels.Event, error) {
	var events []gormModels.Event
	err := r.db.WithContext(ctx).
		Where("ends_at < ?", now).
		Order("starts_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list past events: %w", err)
	}
	return events, nil
}

// ListAll returns every event for the admin console, newest first.
func (r *EventRepository) ListAll(ctx context.Context) ([]gormModels.Event, error) {
	var events []gormModels.Event
	err := r.db.WithContext(ctx).
		Order("starts_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// GetBySlug retrieves one event by its URL slug.
func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*gormModels.Event, error) {
	var event gormModels.Event
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *gormModels.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// Update saves the full record with an explicit column list so cleared
// fields (description, venue, cover, register link) persist.
func (r *EventRepository) Update(ctx context.Context, event *gormModels.Event) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Event{}).
		Where("id = ?", event.ID).
		Select("title", "slug", "description", "venue", "cover_url",
			"starts_at", "ends_at", "register_url").
		Updates(event)
	if res.Error != nil {
		return fmt.Errorf("failed to update event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Event{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
