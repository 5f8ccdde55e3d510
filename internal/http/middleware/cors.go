package middleware

import (
	"net/http"
	"strings"
)

// CORS aplica política restrita baseada em ALLOW_ORIGINS. Cada entrada é
// comparada exatamente com o Origin da requisição; "*" liberta todas as
// origens, útil em desenvolvimento.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowExact := make(map[string]struct{}, len(allowedOrigins))
	for _, entry := range allowedOrigins {
		e := strings.TrimSpace(entry)
		if e == "" {
			continue
		}
		if e == "*" {
			allowAll = true
			continue
		}
		allowExact[e] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			_, allowed := allowExact[origin]
			if origin != "" && (allowAll || allowed) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, x-api-key, x-user-email")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
