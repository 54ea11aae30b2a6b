package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"digitull1/wonderwhiz-api/chat"
	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/supabase"
	"digitull1/wonderwhiz-api/types"
)

func ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		writeError(w, "Missing message", http.StatusBadRequest)
		return
	}

	session := Sessions.GetOrCreate(req.SessionID, loadProfile(r))

	msgs, err := session.ProcessMessage(req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrAlreadyProcessing):
			// no retry is attempted; the user resubmits manually
			writeError(w, "I'm still thinking about your last question!", http.StatusTooManyRequests)
		case errors.Is(err, chat.ErrEmptyMessage):
			writeError(w, "Missing message", http.StatusBadRequest)
		default:
			config.Logger.Error("Failed to process message:", err)
			writeError(w, "Could not process message", http.StatusInternalServerError)
		}
		return
	}

	topic := session.Topic()

	persistMessages(r, session.ID, msgs)
	trackActivity(r, session.ID, config.ActivityTypeMessage, req.Message, map[string]interface{}{
		"message_length": len(req.Message),
		"topic":          topic.SelectedTopic,
	})
	for _, msg := range msgs {
		if msg.Kind == types.MessageToc {
			trackActivity(r, session.ID, config.ActivityTypeTopicStarted, topic.SelectedTopic, nil)
			break
		}
	}
	if topic.SelectedTopic != "" && supabase.Enabled() {
		client, userID := requestClient(r)
		go func() {
			if err := supabase.RecordSession(client, session.ID, userID, topic.SelectedTopic); err != nil {
				config.Logger.Warn("Failed to record session:", err)
			}
		}()
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:     true,
		SessionID:   session.ID,
		UserMessage: req.Message,
		Messages:    msgs,
		Topic:       topic,
	})
}

func GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, "Missing session_id", http.StatusBadRequest)
		return
	}

	session, ok := Sessions.Get(sessionID)
	if !ok {
		// not live in this process; fall back to persisted history so a
		// returning client can still read an old adventure
		if supabase.Enabled() {
			client, userID := requestClient(r)
			msgs, err := supabase.GetMessages(client, sessionID, userID, 200)
			if err == nil && len(msgs) > 0 {
				writeJSON(w, http.StatusOK, types.GetMessagesResponse{
					Success:  true,
					Messages: msgs,
				})
				return
			}
		}
		writeError(w, "Unknown session", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, types.GetMessagesResponse{
		Success:  true,
		Messages: session.Messages(),
	})
}

// ResetChatHandler clears the conversation and reinitializes session state
func ResetChatHandler(w http.ResponseWriter, r *http.Request) {
	var req types.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	session, ok := Sessions.Get(req.SessionID)
	if !ok {
		writeError(w, "Unknown session", http.StatusNotFound)
		return
	}

	session.Reset()

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:   true,
		SessionID: session.ID,
		Messages:  session.Messages(),
		Topic:     session.Topic(),
	})
}

// SuggestionsHandler returns the starter prompts shown in an empty chat
func SuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.RelatedTopicsResponse{
		Success: true,
		Topics:  chat.StarterPrompts,
	})
}
