package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/common"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db/repositories"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/dtos"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

// ListNewsHandler handles GET /api/v1/news: published posts only.
func ListNewsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := deps.Repo.News.ListPublished(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list news")
			return
		}
		respondWithSuccess(w, http.StatusOK, &posts)
	}
}

// GetNewsHandler handles GET /api/v1/news/{slug}. Unpublished posts read as
// missing to the public.
func GetNewsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		post, err := deps.Repo.News.GetBySlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "News post not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch news post")
			return
		}
		if !post.Published {
			respondWithError(w, http.StatusNotFound, "News post not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, post)
	}
}

// ListAllNewsHandler handles GET /api/v1/admin/news: drafts included.
func ListAllNewsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := deps.Repo.News.ListAll(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list news")
			return
		}
		respondWithSuccess(w, http.StatusOK, &posts)
	}
}

func newsPostFromRequest(req *dtos.NewsPostRequest) *gormModels.NewsPost {
	slug := req.Slug
	if slug == "" {
		slug = common.Slugify(req.Title)
	}
	return &gormModels.NewsPost{
		Title:     req.Title,
		Slug:      slug,
		Body:      req.Body,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}
}

// CreateNewsHandler handles POST /api/v1/admin/news
func CreateNewsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.NewsPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "Title is required")
			return
		}

		post := newsPostFromRequest(&req)
		if err := deps.Repo.News.Create(r.Context(), post); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				respondWithError(w, http.StatusConflict, "A post with this slug already exists")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to create news post")
			return
		}

		deps.Service.Pages.Invalidate()
		respondWithSuccess(w, http.StatusCreated, post)
	}
}

// UpdateNewsHandler handles PUT /api/v1/admin/news/{id}
func UpdateNewsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.NewsPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "Title is required")
			return
		}

		post := newsPostFromRequest(&req)
		post.ID = id
		if err := deps.Repo.News.Update(r.Context(), post); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "News post not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update news post")
			return
		}

		deps.Service.Pages.Invalidate()
		respondWithSuccess(w, http.StatusOK, post)
	}
}

// DeleteNewsHandler handles DELETE /api/v1/admin/news/{id}
func DeleteNewsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := deps.Repo.News.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "News post not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete news post")
			return
		}

		deps.Service.Pages.Invalidate()
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}
