// internal/handlers/http/debug_repos.go
package http

import (
	"net/http"

	mcphandlers "nodal-oilgas/internal/handlers/mcp"
	"nodal-oilgas/internal/util"
)

func ReposStatusHandler(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, mcphandlers.ReposStatus())
}
