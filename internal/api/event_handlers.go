package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/common"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db/repositories"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/dtos"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

// eventListResponse splits the public event list around the current time.
type eventListResponse struct {
	Upcoming []gormModels.Event `json:"upcoming"`
	Past     []gormModels.Event `json:"past"`
}

// ListEventsHandler handles GET /api/v1/events
func ListEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		upcoming, err := deps.Repo.Events.ListUpcoming(r.Context(), now)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list events")
			return
		}
		past, err := deps.Repo.Events.ListPast(r.Context(), now)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list events")
			return
		}
		respondWithSuccess(w, http.StatusOK, &eventListResponse{Upcoming: upcoming, Past: past})
	}
}

// GetEventHandler handles GET /api/v1/events/{slug}
func GetEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		event, err := deps.Repo.Events.GetBySlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Event not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
			return
		}
		respondWithSuccess(w, http.StatusOK, event)
	}
}

// ListAllEventsHandler handles GET /api/v1/admin/events
func ListAllEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := deps.Repo.Events.ListAll(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list events")
			return
		}
		respondWithSuccess(w, http.StatusOK, &events)
	}
}

func eventFromRequest(req *dtos.EventRequest) (*gormModels.Event, error) {
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, errors.New("startsAt must be RFC3339")
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return nil, errors.New("endsAt must be RFC3339")
	}

	slug := req.Slug
	if slug == "" {
		slug = common.Slugify(req.Title)
	}

	return &gormModels.Event{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Venue:       req.Venue,
		CoverURL:    req.CoverURL,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		RegisterURL: req.RegisterURL,
	}, nil
}

// CreateEventHandler handles POST /api/v1/admin/events
func CreateEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "Title is required")
			return
		}

		event, err := eventFromRequest(&req)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := deps.Repo.Events.Create(r.Context(), event); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				respondWithError(w, http.StatusConflict, "An event with this slug already exists")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to create event")
			return
		}

		deps.Service.Pages.Invalidate()
		respondWithSuccess(w, http.StatusCreated, event)
	}
}

// UpdateEventHandler handles PUT /api/v1/admin/events/{id}
func UpdateEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "Title is required")
			return
		}

		event, err := eventFromRequest(&req)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		event.ID = id

		if err := deps.Repo.Events.Update(r.Context(), event); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Event not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update event")
			return
		}

		deps.Service.Pages.Invalidate()
		respondWithSuccess(w, http.StatusOK, event)
	}
}

// DeleteEventHandler handles DELETE /api/v1/admin/events/{id}
func DeleteEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := deps.Repo.Events.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Event not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete event")
			return
		}

		deps.Service.Pages.Invalidate()
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}
