package handlers

import (
	"encoding/json"
	"net/http"

	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/supabase"
	"digitull1/wonderwhiz-api/types"
)

func GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.ProfileResponse{
		Success: true,
		Profile: loadProfile(r),
	})
}

// UpdateProfileHandler changes onboarding fields. When the update touches a
// live session, an age-range or language change also resets its topic state.
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Username == "" && req.AgeRange == "" && req.Avatar == "" && req.Language == "" {
		writeError(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	profile := loadProfile(r)
	applied := false
	if req.SessionID != "" {
		if session, ok := Sessions.Get(req.SessionID); ok {
			profile = session.UpdateProfile(req)
			applied = true
		}
	}
	// a stale session_id (server restart, expired session) must not
	// swallow the update
	if !applied {
		if req.Username != "" {
			profile.Username = req.Username
		}
		if req.AgeRange != "" {
			profile.AgeRange = req.AgeRange
		}
		if req.Avatar != "" {
			profile.Avatar = req.Avatar
		}
		if req.Language != "" {
			profile.Language = req.Language
		}
	}

	if supabase.Enabled() {
		if client, userID, err := supabase.ClientFromRequest(r); err == nil {
			profile.UserID = userID
			if err := supabase.UpsertProfile(client, profile); err != nil {
				config.Logger.Warn("Failed to persist profile:", err)
			}
		}
	}

	writeJSON(w, http.StatusOK, types.ProfileResponse{
		Success: true,
		Profile: profile,
	})
}
