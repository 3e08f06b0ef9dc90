package api

import "net/http"

// HealthzHandler handles GET /healthz. It always returns 200: the service
// holds no state and has no dependencies to probe at request time.
func HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
