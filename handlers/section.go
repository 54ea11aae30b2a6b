package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"digitull1/wonderwhiz-api/chat"
	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/types"
)

// SectionHandler opens one table-of-contents section: generates its content
// and advances learning progress
func SectionHandler(w http.ResponseWriter, r *http.Request) {
	var req types.SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.Section == "" {
		writeError(w, "Missing session_id or section", http.StatusBadRequest)
		return
	}

	session, ok := Sessions.Get(req.SessionID)
	if !ok {
		writeError(w, "Unknown session", http.StatusNotFound)
		return
	}

	msg, err := session.OpenSection(req.Section)
	if err != nil {
		if errors.Is(err, chat.ErrNoActiveTopic) {
			writeError(w, "Pick a topic first", http.StatusBadRequest)
			return
		}
		config.Logger.Error("Failed to open section:", err)
		writeError(w, "Could not open section", http.StatusInternalServerError)
		return
	}

	persistMessages(r, session.ID, []types.Message{msg})
	if msg.Kind == types.MessageSection {
		trackActivity(r, session.ID, config.ActivityTypeSectionCompleted, req.Section, map[string]interface{}{
			"topic": session.Topic().SelectedTopic,
		})
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:   true,
		SessionID: session.ID,
		Messages:  []types.Message{msg},
		Topic:     session.Topic(),
	})
}

// ProgressHandler reports the topic session state, including the derived
// learning progress percentage
func ProgressHandler(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, types.ProgressResponse{
		Success: true,
		Topic:   session.Topic(),
	})
}
