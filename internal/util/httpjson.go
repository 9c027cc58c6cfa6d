// internal/util/httpjson.go
// Helper respons JSON yang dipakai semua handler

package util

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError menulis body {error, message}; error tanpa AppError dianggap internal.
func WriteError(w http.ResponseWriter, err error) {
	code := CodeOf(err)
	if code == "" {
		code = CodeInternal
	}
	WriteJSON(w, HTTPStatus(err), map[string]any{
		"error":   code,
		"message": err.Error(),
	})
}
