package handlers

import (
	"net/http"
	"strconv"
	"time"

	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/supabase"
	"digitull1/wonderwhiz-api/types"
)

// GetActivityHandler lists recent learning events for the parent dashboard.
// Requires a logged-in user; anonymous activity is persisted but not listed.
func GetActivityHandler(w http.ResponseWriter, r *http.Request) {
	if !supabase.Enabled() {
		writeJSON(w, http.StatusOK, types.GetActivityResponse{Success: true, Activities: []types.LearningActivity{}})
		return
	}

	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	since := time.Now().AddDate(0, 0, -days)
	activities, err := supabase.GetLearningActivities(client, userID, since, limit)
	if err != nil {
		config.Logger.Error("Failed to fetch learning activities:", err)
		writeError(w, "Failed to fetch activity", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetActivityResponse{
		Success:    true,
		Activities: activities,
	})
}
