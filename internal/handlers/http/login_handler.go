// internal/handlers/http/login_handler.go
package http

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/middleware"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // epoch seconds
	User      string `json:"user"`
	Role      string `json:"role"`
}

func LoginHandler(admin config.Admin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in loginReq
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if admin.User == "" || admin.PassHash == "" || admin.JWTSecret == "" {
			http.Error(w, "admin not configured", http.StatusForbidden)
			return
		}
		if in.Username != admin.User {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.PassHash), []byte(in.Password)) != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, exp, err := middleware.GenerateAdminToken(admin.JWTSecret, admin.User, 0)
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loginResp{
			Token:     token,
			ExpiresAt: exp,
			User:      admin.User,
			Role:      "admin",
		})
	}
}
