// middleware/auth.go
// Middleware untuk cek API key

package middleware

import "net/http"

// APIKey menolak request tanpa header X-API-Key yang cocok. expected kosong = terbuka.
func APIKey(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected != "" && r.Header.Get("X-API-Key") != expected {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
