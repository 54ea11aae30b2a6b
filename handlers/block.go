package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"digitull1/wonderwhiz-api/chat"
	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/types"
)

// BlockHandler runs one exploration action (fact, story, image or quiz)
// against the current topic
func BlockHandler(w http.ResponseWriter, r *http.Request) {
	var req types.BlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.BlockType == "" {
		writeError(w, "Missing session_id or block_type", http.StatusBadRequest)
		return
	}

	session, ok := Sessions.Get(req.SessionID)
	if !ok {
		writeError(w, "Unknown session", http.StatusNotFound)
		return
	}

	msg, err := session.ExploreBlock(req.BlockType)
	if err != nil {
		if errors.Is(err, chat.ErrNoActiveTopic) {
			writeError(w, "Pick a topic first", http.StatusBadRequest)
			return
		}
		config.Logger.Error("Failed to explore block:", err)
		writeError(w, "Could not explore block", http.StatusInternalServerError)
		return
	}

	persistMessages(r, session.ID, []types.Message{msg})
	switch msg.Kind {
	case types.MessageQuiz:
		trackActivity(r, session.ID, config.ActivityTypeQuizAnswered, session.Topic().SelectedTopic, nil)
	case types.MessageImage:
		trackActivity(r, session.ID, config.ActivityTypeImageGenerated, msg.ImagePrompt, nil)
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:   true,
		SessionID: session.ID,
		Messages:  []types.Message{msg},
		Topic:     session.Topic(),
	})
}
