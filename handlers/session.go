package handlers

import (
	"net/http"

	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/supabase"
	"digitull1/wonderwhiz-api/types"
)

// GetSessionsHandler lists the user's persisted past sessions. Requires
// persistence; memory-only deployments have nothing to list.
func GetSessionsHandler(w http.ResponseWriter, r *http.Request) {
	if !supabase.Enabled() {
		writeJSON(w, http.StatusOK, types.GetSessionsResponse{Success: true, Sessions: []types.Session{}})
		return
	}

	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessions, err := supabase.GetSessions(client, userID)
	if err != nil {
		config.Logger.Error("Failed to fetch sessions:", err)
		writeError(w, "Failed to fetch sessions", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetSessionsResponse{
		Success:  true,
		Sessions: sessions,
	})
}
