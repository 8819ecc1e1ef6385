package middleware

import (
	"net/http"
	"strings"
)

// CORS returns middleware that sets common CORS headers for the configured
// origins. An empty list disables CORS headers. The special value "*" allows
// any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := false
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		if o == "*" {
			allowAny = true
		}
		if o != "" {
			origins = append(origins, o)
		}
	}

	originAllowed := func(origin string) bool {
		if origin == "" {
			return false
		}
		for _, o := range origins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch requestOrigin := r.Header.Get("Origin"); {
			case allowAny:
				w.Header().Set("Access-Control-Allow-Origin", "*")
				setCommonHeaders(w)
			case originAllowed(requestOrigin):
				w.Header().Set("Access-Control-Allow-Origin", requestOrigin)
				w.Header().Set("Vary", "Origin")
				setCommonHeaders(w)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setCommonHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, X-Request-ID")
	w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Catalog-Source")
	w.Header().Set("Access-Control-Max-Age", "3600")
}
