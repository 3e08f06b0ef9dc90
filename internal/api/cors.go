package api

import "net/http"

// CORSPolicy computes CORS headers from a request origin and a configured
// allow-list. Headers are attached to every response on every path,
// including error paths.
type CORSPolicy struct {
	origins []string
}

// NewCORSPolicy creates a policy from the configured allow-list. The list
// must be non-empty; config.CORSConfig.Origins falls back to a default pair.
func NewCORSPolicy(origins []string) *CORSPolicy {
	return &CORSPolicy{origins: origins}
}

// AllowedOrigin returns the value for the Access-Control-Allow-Origin
// header: the request origin when it is allow-listed, otherwise the first
// configured origin. The fallback is permissive on purpose; it does not
// grant the disallowed origin access, since browsers only honor an exact
// match.
func (p *CORSPolicy) AllowedOrigin(requestOrigin string) string {
	for _, o := range p.origins {
		if o == requestOrigin {
			return requestOrigin
		}
	}
	if len(p.origins) == 0 {
		return ""
	}
	return p.origins[0]
}

// Middleware attaches CORS headers to every response and short-circuits
// OPTIONS preflight requests with 204 regardless of path.
func (p *CORSPolicy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := p.AllowedOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
