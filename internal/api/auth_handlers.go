package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/auth"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/logging"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/dtos"
)

// LoginHandler handles POST /api/v1/auth/login
//
// On a credential match the session cookie is set and the session claims are
// returned; on a mismatch no cookie is set. A missing credential
// configuration is a server error, not an authentication failure.
func LoginHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid login payload")
			return
		}

		ok, err := auth.ValidateCredentials(
			deps.Config.Admin.Username,
			deps.Config.Admin.Password,
			req.Username,
			req.Password,
		)
		if err != nil {
			logging.Error("Admin credentials not configured", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Server configuration error")
			return
		}
		if !ok {
			deps.Metrics.LoginFailuresTotal.Inc()
			logging.Warn("Failed admin login attempt", "username", req.Username)
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		session, err := deps.Service.Sessions.IssueSession(w, req.Username)
		if err != nil {
			if errors.Is(err, auth.ErrMissingSecret) {
				logging.Error("Session secret not configured")
				respondWithError(w, http.StatusInternalServerError, "Server configuration error")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to issue session")
			return
		}

		logging.Info("Admin logged in", "username", session.Username)
		respondWithSuccess(w, http.StatusOK, &dtos.SessionResponse{
			Username:  session.Username,
			IssuedAt:  session.IssuedAt,
			ExpiresAt: session.ExpiresAt,
		})
	}
}

// LogoutHandler handles POST /api/v1/auth/logout
//
// The cookie is deleted unconditionally. Copies of the token elsewhere stay
// valid until natural expiry; see auth.ErrRevocationUnsupported.
func LogoutHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deps.Service.Sessions.ClearSession(w)
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}

// SessionHandler handles GET /api/v1/auth/session
//
// Probe endpoint for the admin console: returns the current session claims
// or 401.
func SessionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := deps.Service.Sessions.ReadSession(w, r)
		if session == nil {
			respondWithError(w, http.StatusUnauthorized, "No active session")
			return
		}
		respondWithSuccess(w, http.StatusOK, &dtos.SessionResponse{
			Username:  session.Username,
			IssuedAt:  session.IssuedAt,
			ExpiresAt: session.ExpiresAt,
		})
	}
}
