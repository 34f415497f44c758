package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db/repositories"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/logging"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

// 10 MiB upload cap; the media host re-encodes anyway.
const maxUploadBytes = 10 << 20

// ListGalleryHandler handles GET /api/v1/gallery
func ListGalleryHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		album := r.URL.Query().Get("album")
		images, err := deps.Repo.Gallery.List(r.Context(), album)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list gallery")
			return
		}
		respondWithSuccess(w, http.StatusOK, &images)
	}
}

// UploadGalleryImageHandler handles POST /api/v1/admin/gallery
//
// Multipart form: "image" file plus optional "caption" and "album" fields.
// The file goes to the media host first; the record is only stored once the
// upload succeeded.
func UploadGalleryImageHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Service.Media == nil {
			respondWithError(w, http.StatusServiceUnavailable, "Media uploads are not configured")
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Missing image file")
			return
		}
		defer file.Close()

		result, err := deps.Service.Media.Upload(r.Context(), header.Filename, file, "gallery")
		if err != nil {
			logging.Error("Gallery upload failed", "filename", header.Filename, "error", err.Error())
			respondWithError(w, http.StatusBadGateway, "Upload to media host failed")
			return
		}

		image := &gormModels.GalleryImage{
			Caption:  r.FormValue("caption"),
			Album:    r.FormValue("album"),
			URL:      result.SecureURL,
			PublicID: result.PublicID,
		}
		if err := deps.Repo.Gallery.Create(r.Context(), image); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to store gallery image")
			return
		}

		deps.Metrics.UploadsTotal.Inc()
		deps.Service.Pages.Invalidate()
		respondWithSuccess(w, http.StatusCreated, image)
	}
}

// DeleteGalleryImageHandler handles DELETE /api/v1/admin/gallery/{id}
//
// Removes the database record and then best-effort deletes the hosted file;
// a failed remote delete leaves only an orphaned file, not a broken page.
func DeleteGalleryImageHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		image, err := deps.Repo.Gallery.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Gallery image not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch gallery image")
			return
		}

		if err := deps.Repo.Gallery.Delete(r.Context(), id); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to delete gallery image")
			return
		}

		if deps.Service.Media != nil && image.PublicID != "" {
			if err := deps.Service.Media.Destroy(r.Context(), image.PublicID); err != nil {
				logging.Warn("Failed to delete hosted image", "public_id", image.PublicID, "error", err.Error())
			}
		}

		deps.Service.Pages.Invalidate()
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}
