package repositories

import (
	"context"
	"errors"
	"testing"

	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

func TestGalleryRepository_ListAndAlbumFilter(t *testing.T) {
	repo := NewGalleryRepository(setupTestDB(t))
	ctx := context.Background()

	for _, img := range []*gormModels.GalleryImage{
		{Caption: "Opening", URL: "https://cdn.example/one.jpg", PublicID: "gallery/one", Album: "agm-2025"},
		{Caption: "Keynote", URL: "https://cdn.example/two.jpg", PublicID: "gallery/two", Album: "agm-2025"},
		{Caption: "Workshop", URL: "https://cdn.example/three.jpg", PublicID: "gallery/three", Album: "workshop"},
	} {
		if err := repo.Create(ctx, img); err != nil {
			t.Fatalf("Create %s: %v", img.PublicID, err)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List returned %d images, want 3", len(all))
	}

	agm, err := repo.List(ctx, "agm-2025")
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(agm) != 2 {
		t.Errorf("album filter returned %d images, want 2", len(agm))
	}
	for _, img := range agm {
		if img.Album != "agm-2025" {
			t.Errorf("foreign album image leaked: %+v", img)
		}
	}
}

func TestGalleryRepository_GetDelete(t *testing.T) {
	repo := NewGalleryRepository(setupTestDB(t))
	ctx := context.Background()

	img := &gormModels.GalleryImage{Caption: "Solo", URL: "https://cdn.example/solo.jpg", PublicID: "gallery/solo"}
	if err := repo.Create(ctx, img); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, img.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PublicID != "gallery/solo" {
		t.Errorf("PublicID = %q", got.PublicID)
	}

	if err := repo.Delete(ctx, img.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, img.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: expected ErrNotFound, got %v", err)
	}
}
