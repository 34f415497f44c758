package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db/repositories"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/logging"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/dtos"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

// SubmitApplicationHandler handles POST /api/v1/applications: the public
// membership form.
func SubmitApplicationHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid application payload")
			return
		}

		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Name == "" || req.StudentID == "" {
			respondWithError(w, http.StatusBadRequest, "Name and student ID are required")
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			respondWithError(w, http.StatusBadRequest, "A valid email is required")
			return
		}

		exists, err := deps.Repo.Applications.ExistsByEmail(r.Context(), req.Email)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to check application")
			return
		}
		if exists {
			respondWithError(w, http.StatusConflict, "An application with this email already exists")
			return
		}

		app := &gormModels.MembershipApplication{
			Name:       req.Name,
			Email:      req.Email,
			StudentID:  req.StudentID,
			Department: req.Department,
			Motivation: req.Motivation,
			Status:     constants.ApplicationPending,
		}
		if err := deps.Repo.Applications.Create(r.Context(), app); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				respondWithError(w, http.StatusConflict, "An application with this email already exists")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to submit application")
			return
		}

		logging.Info("Membership application received", "email", app.Email)
		respondWithSuccess(w, http.StatusCreated, app)
	}
}

// ListApplicationsHandler handles GET /api/v1/admin/applications with an
// optional ?status= filter.
func ListApplicationsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := constants.ApplicationStatus(r.URL.Query().Get("status"))
		if status != "" && !status.Valid() {
			respondWithError(w, http.StatusBadRequest, "Unknown status filter")
			return
		}

		apps, err := deps.Repo.Applications.List(r.Context(), status)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list applications")
			return
		}
		respondWithSuccess(w, http.StatusOK, &apps)
	}
}

// ReviewApplicationHandler handles PUT /api/v1/admin/applications/{id}
func ReviewApplicationHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.ApplicationReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid review payload")
			return
		}
		status := constants.ApplicationStatus(req.Status)
		if !status.Valid() {
			respondWithError(w, http.StatusBadRequest, "Unknown application status")
			return
		}

		if err := deps.Repo.Applications.UpdateStatus(r.Context(), id, status); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Application not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update application")
			return
		}

		app, err := deps.Repo.Applications.GetByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch application")
			return
		}
		respondWithSuccess(w, http.StatusOK, app)
	}
}

// DeleteApplicationHandler handles DELETE /api/v1/admin/applications/{id}
func DeleteApplicationHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := deps.Repo.Applications.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Application not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete application")
			return
		}
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}
