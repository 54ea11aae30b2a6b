package handlers

import (
	"errors"
	"net/http"

	"digitull1/wonderwhiz-api/chat"
	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/types"
)

// RelatedTopicsHandler returns "what to explore next" suggestions for the
// session's current topic, memoized per (topic, age range, language)
func RelatedTopicsHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, "Missing session_id", http.StatusBadRequest)
		return
	}

	session, ok := Sessions.Get(sessionID)
	if !ok {
		writeError(w, "Unknown session", http.StatusNotFound)
		return
	}

	topics, err := session.RelatedTopics()
	if err != nil {
		if errors.Is(err, chat.ErrNoActiveTopic) {
			writeError(w, "Pick a topic first", http.StatusBadRequest)
			return
		}
		config.Logger.Error("Failed to fetch related topics:", err)
		writeError(w, "Could not fetch related topics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.RelatedTopicsResponse{
		Success: true,
		Topics:  topics,
	})
}
