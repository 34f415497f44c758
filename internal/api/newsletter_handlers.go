package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db/repositories"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/dtos"
)

// SubscribeHandler handles POST /api/v1/newsletter/subscribe. Subscribing an
// already-subscribed email succeeds and returns the existing entry.
func SubscribeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SubscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid subscribe payload")
			return
		}

		email := strings.TrimSpace(strings.ToLower(req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			respondWithError(w, http.StatusBadRequest, "A valid email is required")
			return
		}

		sub, err := deps.Repo.Subscribers.Subscribe(r.Context(), email)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
			return
		}

		updateSubscriberGauge(deps, r)
		respondWithSuccess(w, http.StatusCreated, sub)
	}
}

// ListSubscribersHandler handles GET /api/v1/admin/subscribers
func ListSubscribersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := deps.Repo.Subscribers.ListAll(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list subscribers")
			return
		}
		respondWithSuccess(w, http.StatusOK, &subs)
	}
}

// UnsubscribeHandler handles DELETE /api/v1/admin/subscribers/{email}
func UnsubscribeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(strings.ToLower(chi.URLParam(r, "email")))
		if err := deps.Repo.Subscribers.Unsubscribe(r.Context(), email); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Subscriber not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to unsubscribe")
			return
		}

		updateSubscriberGauge(deps, r)
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}

func updateSubscriberGauge(deps *Dependencies, r *http.Request) {
	if n, err := deps.Repo.Subscribers.Count(r.Context()); err == nil {
		deps.Metrics.SubscribersTotal.Set(float64(n))
	}
}
