// internal/middleware/admin_auth.go
package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"nodal-oilgas/internal/config"
)

// checkBasic: username dibandingkan constant-time, password via bcrypt.
func checkBasic(admin config.Admin, r *http.Request) bool {
	u, p, ok := r.BasicAuth()
	if !ok {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(u), []byte(admin.User)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.PassHash), []byte(p)) == nil
}

// Admin menerima Bearer JWT (dari /login) atau Basic auth (skrip/curl).
func Admin(admin config.Admin) func(http.Handler) http.Handler {
	jwtMW := AdminJWT(admin.JWTSecret)
	return func(next http.Handler) http.Handler {
		viaJWT := jwtMW(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.Header.Get("Authorization"), "Basic ") {
				if admin.User == "" || admin.PassHash == "" {
					http.Error(w, "admin auth not configured", http.StatusForbidden)
					return
				}
				if !checkBasic(admin, r) {
					w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				claims := &AdminClaims{User: admin.User, Role: "admin"}
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
				return
			}
			viaJWT.ServeHTTP(w, r)
		})
	}
}
