package handlers

import (
	"encoding/json"
	"net/http"

	goSupabase "github.com/supabase-community/supabase-go"

	"digitull1/wonderwhiz-api/chat"
	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/supabase"
	"digitull1/wonderwhiz-api/types"
)

// Sessions is the process-wide session manager, wired in main (and by tests)
var Sessions *chat.Manager

func Setup(manager *chat.Manager) {
	Sessions = manager
}

type errorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, errorResponse{ErrorMessage: message})
}

// loadProfile resolves the caller's stored profile, defaulting when
// persistence is off or the user has none yet
func loadProfile(r *http.Request) types.Profile {
	profile := types.Profile{
		AgeRange: config.ChatConfig.DefaultAgeRange,
		Language: config.ChatConfig.DefaultLanguage,
	}
	if !supabase.Enabled() {
		return profile
	}
	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		return profile
	}
	stored, found, err := supabase.GetProfile(client, userID)
	if err != nil {
		config.Logger.Warn("Failed to load profile:", err)
		return profile
	}
	if found {
		if stored.AgeRange == "" {
			stored.AgeRange = profile.AgeRange
		}
		if stored.Language == "" {
			stored.Language = profile.Language
		}
		return stored
	}
	return profile
}

// requestClient resolves the persistence client and user for a request.
// Without a usable token it falls back to the service client and attributes
// rows to "anonymous"; the chat never requires a login.
func requestClient(r *http.Request) (*goSupabase.Client, string) {
	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		return supabase.Client, supabase.UserIDFromRequest(r)
	}
	return client, userID
}

// persistMessages saves new history entries off the request path.
// Best-effort: the in-memory store is authoritative.
func persistMessages(r *http.Request, sessionID string, msgs []types.Message) {
	if !supabase.Enabled() || len(msgs) == 0 {
		return
	}
	client, userID := requestClient(r)
	go func() {
		for _, msg := range msgs {
			if err := supabase.SaveMessage(client, userID, sessionID, msg); err != nil {
				config.Logger.Warn("Failed to save message:", err)
			}
		}
	}()
}

// trackActivity records a learning event off the request path
func trackActivity(r *http.Request, sessionID, activityType, content string, metadata map[string]interface{}) {
	if !supabase.Enabled() {
		return
	}
	client, userID := requestClient(r)
	go func() {
		if err := supabase.TrackLearningActivity(client, userID, sessionID, activityType, content, metadata); err != nil {
			config.Logger.Warn("TrackLearningActivity failed:", err)
		}
		if err := supabase.IncrementSessionCounter(client, sessionID, userID, activityType); err != nil {
			config.Logger.Debug("IncrementSessionCounter skipped:", err)
		}
	}()
}
