package middleware

import (
	"net/http"
	"strings"
)

const (
	allowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowHeaders = "Content-Type, Authorization, x-refresh-token"
)

// Paths que el interceptor no toca (assets estáticos).
var corsExcludedPrefixes = []string{
	"/static/",
	"/favicon.ico",
}

// CORS es el interceptor global de requests:
// - setea headers CORS en toda respuesta (origen eco del request, o "*")
// - corta preflights OPTIONS con 200 sin body
// - agrega headers de seguridad al resto
// El eco de cualquier Origin con credentials=true viene del contrato
// original y se mantiene tal cual.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if corsExcluded(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		origin := r.Header.Get("Origin")
		if strings.TrimSpace(origin) == "" {
			origin = "*"
		}

		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		h.Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")

		next.ServeHTTP(w, r)
	})
}

func corsExcluded(path string) bool {
	for _, p := range corsExcludedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
