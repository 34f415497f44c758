package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

func seedEvent(t *testing.T, repo *EventRepository, title, slug string, start, end time.Time) *gormModels.Event {
	t.Helper()
	e := &gormModels.Event{Title: title, Slug: slug, StartsAt: start, EndsAt: end}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create %s: %v", slug, err)
	}
	return e
}

func TestEventRepository_UpcomingPastSplit(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	seedEvent(t, repo, "Old Workshop", "old-workshop",
		now.Add(-72*time.Hour), now.Add(-48*time.Hour))
	seedEvent(t, repo, "Older Seminar", "older-seminar",
		now.Add(-240*time.Hour), now.Add(-216*time.Hour))
	seedEvent(t, repo, "Running Now", "running-now",
		now.Add(-time.Hour), now.Add(time.Hour))
	seedEvent(t, repo, "Next Week", "next-week",
		now.Add(168*time.Hour), now.Add(170*time.Hour))

	upcoming, err := repo.ListUpcoming(ctx, now)
	if err != nil {
		t.Fatalf("ListUpcoming: %v", err)
	}
	// An event still in progress counts as upcoming; soonest start first.
	if len(upcoming) != 2 || upcoming[0].Slug != "running-now" || upcoming[1].Slug != "next-week" {
		t.Errorf("unexpected upcoming set: %+v", slugsOf(upcoming))
	}

	past, err := repo.ListPast(ctx, now)
	if err != nil {
		t.Fatalf("ListPast: %v", err)
	}
	// Most recent past event first.
	if len(past) != 2 || past[0].Slug != "old-workshop" || past[1].Slug != "older-seminar" {
		t.Errorf("unexpected past set: %+v", slugsOf(past))
	}
}

func slugsOf(events []gormModels.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Slug
	}
	return out
}

func TestEventRepository_GetBySlug(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	created := seedEvent(t, repo, "AGM 2025", "agm-2025", now, now.Add(2*time.Hour))

	got, err := repo.GetBySlug(ctx, "agm-2025")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != created.ID || got.Title != "AGM 2025" {
		t.Errorf("fetched event mismatch: %+v", got)
	}

	if _, err := repo.GetBySlug(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEventRepository_DuplicateSlug(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	now := time.Now().UTC()

	seedEvent(t, repo, "First", "same-slug", now, now.Add(time.Hour))
	dup := &gormModels.Event{Title: "Second", Slug: "same-slug", StartsAt: now, EndsAt: now.Add(time.Hour)}
	if err := repo.Create(context.Background(), dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestEventRepository_UpdateDelete(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	e := seedEvent(t, repo, "Hackathon", "hackathon", now, now.Add(8*time.Hour))

	e.Venue = "Auditorium B"
	if err := repo.Update(ctx, e); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetBySlug(ctx, "hackathon")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.Venue != "Auditorium B" {
		t.Errorf("venue not persisted: %q", got.Venue)
	}

	if err := repo.Update(ctx, &gormModels.Event{ID: "missing", Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update missing: expected ErrNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: expected ErrNotFound, got %v", err)
	}
}

func TestEventRepository_UpdateClearsFields(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	e := &gormModels.Event{
		Title:       "Seminar",
		Slug:        "seminar",
		Description: "old description",
		Venue:       "Room 101",
		CoverURL:    "https://cdn.example/cover.jpg",
		RegisterURL: "https://forms.example/register",
		StartsAt:    now,
		EndsAt:      now.Add(2 * time.Hour),
	}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Cleared fields are zero values and must still persist.
	e.Description = ""
	e.Venue = ""
	e.CoverURL = ""
	e.RegisterURL = ""
	if err := repo.Update(ctx, e); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "seminar")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.Description != "" || got.Venue != "" || got.CoverURL != "" || got.RegisterURL != "" {
		t.Errorf("fields not cleared: description=%q venue=%q cover=%q register=%q",
			got.Description, got.Venue, got.CoverURL, got.RegisterURL)
	}
	if !got.StartsAt.Equal(e.StartsAt) {
		t.Errorf("starts_at changed: %v, want %v", got.StartsAt, e.StartsAt)
	}
}
