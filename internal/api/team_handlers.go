package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db/repositories"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/dtos"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

// TeamPageHandler handles GET /api/v1/team: the grouped public team page.
func TeamPageHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := deps.Service.Pages.TeamPage(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to build team page")
			return
		}
		respondWithSuccess(w, http.StatusOK, page)
	}
}

// ChapterListHandler handles GET /api/v1/chapters
func ChapterListHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := deps.Service.Pages.TeamPage(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to build chapter list")
			return
		}
		respondWithSuccess(w, http.StatusOK, &page.Chapters)
	}
}

// ChapterHandler handles GET /api/v1/chapters/{slug}
func ChapterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		chapter, err := deps.Service.Pages.Chapter(r.Context(), slug)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Chapter not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch chapter")
			return
		}
		respondWithSuccess(w, http.StatusOK, chapter)
	}
}

// ListTeamMembersHandler handles GET /api/v1/admin/team: the raw member
// list for the admin console.
func ListTeamMembersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := deps.Repo.TeamMembers.ListAll(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list team members")
			return
		}
		respondWithSuccess(w, http.StatusOK, &members)
	}
}

func memberFromRequest(req *dtos.TeamMemberRequest) *gormModels.TeamMember {
	roleKey := constants.RoleCategory(req.RoleKey)
	if roleKey == "" {
		roleKey = constants.RoleNone
	}
	affiliation := constants.Affiliation(req.Affiliation)
	if affiliation == "" {
		affiliation = constants.AffiliationMain
	}
	return &gormModels.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		RoleKey:     roleKey,
		Bio:         req.Bio,
		PhotoURL:    req.PhotoURL,
		Priority:    req.Priority,
		Affiliation: affiliation,
		Chapter:     req.Chapter,
		Email:       req.Email,
		LinkedinURL: req.LinkedinURL,
		FacebookURL: req.FacebookURL,
		GithubURL:   req.GithubURL,
	}
}

// CreateTeamMemberHandler handles POST /api/v1/admin/team
func CreateTeamMemberHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.TeamMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Role == "" {
			respondWithError(w, http.StatusBadRequest, "Name and role are required")
			return
		}

		member := memberFromRequest(&req)
		if err := deps.Repo.TeamMembers.Create(r.Context(), member); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create team member")
			return
		}

		deps.Service.Pages.Invalidate()
		updateTeamGauge(deps, r)
		respondWithSuccess(w, http.StatusCreated, member)
	}
}

// UpdateTeamMemberHandler handles PUT /api/v1/admin/team/{id}
func UpdateTeamMemberHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.TeamMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Role == "" {
			respondWithError(w, http.StatusBadRequest, "Name and role are required")
			return
		}

		member := memberFromRequest(&req)
		member.ID = id
		if err := deps.Repo.TeamMembers.Update(r.Context(), member); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Team member not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update team member")
			return
		}

		deps.Service.Pages.Invalidate()
		respondWithSuccess(w, http.StatusOK, member)
	}
}

// DeleteTeamMemberHandler handles DELETE /api/v1/admin/team/{id}
func DeleteTeamMemberHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := deps.Repo.TeamMembers.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Team member not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete team member")
			return
		}

		deps.Service.Pages.Invalidate()
		updateTeamGauge(deps, r)
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}

func updateTeamGauge(deps *Dependencies, r *http.Request) {
	if n, err := deps.Repo.TeamMembers.Count(r.Context()); err == nil {
		deps.Metrics.TeamMembersTotal.Set(float64(n))
	}
}
