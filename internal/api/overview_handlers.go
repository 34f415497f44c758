package api

import "net/http"

// OverviewHandler handles GET /api/v1/overview: the home page payload.
func OverviewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := deps.Service.Pages.Overview(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to build overview")
			return
		}
		respondWithSuccess(w, http.StatusOK, overview)
	}
}
