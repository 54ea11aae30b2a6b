package supabase

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"digitull1/wonderwhiz-api/types"
)

// messageRow is the persisted shape of a chat message. Kind-specific
// payloads are flattened to JSON so the table stays one row per turn.
type messageRow struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
	IsUser    bool   `json:"is_user"`
	Content   string `json:"content"`
	Payload   string `json:"payload,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SaveMessage persists one message. Best-effort: callers log failures and
// keep going, history lives in memory either way.
func SaveMessage(client *supabase.Client, userID, sessionID string, msg types.Message) error {
	payload, err := json.Marshal(struct {
		TableOfContents []string               `json:"table_of_contents,omitempty"`
		Section         string                 `json:"section,omitempty"`
		BlockType       string                 `json:"block_type,omitempty"`
		ImagePrompt     string                 `json:"image_prompt,omitempty"`
		ImageURL        string                 `json:"image_url,omitempty"`
		Quiz            *types.Quiz            `json:"quiz,omitempty"`
		Error           *types.GenerationError `json:"error,omitempty"`
	}{
		TableOfContents: msg.TableOfContents,
		Section:         msg.Section,
		BlockType:       msg.BlockType,
		ImagePrompt:     msg.ImagePrompt,
		ImageURL:        msg.ImageURL,
		Quiz:            msg.Quiz,
		Error:           msg.Error,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}

	row := messageRow{
		ID:        msg.ID,
		UserID:    userID,
		SessionID: sessionID,
		Kind:      string(msg.Kind),
		IsUser:    msg.IsUser,
		Content:   msg.Text,
		Payload:   string(payload),
	}

	_, _, err = client.From("messages").Insert(row, false, "", "", "").Execute()
	return err
}

// GetMessages fetches the most recent persisted messages for a session in
// chronological order
func GetMessages(client *supabase.Client, sessionID, userID string, limit int) ([]types.Message, error) {
	resp, _, err := client.From("messages").
		Select("id, kind, is_user, content, payload, created_at", "", false).
		Eq("user_id", userID).
		Eq("session_id", sessionID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var rows []messageRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	slices.Reverse(rows)

	messages := make([]types.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, rowToMessage(row))
	}

	return messages, nil
}

// rowToMessage restores a persisted row to its in-memory shape, including
// the kind-specific payload and original timestamp
func rowToMessage(row messageRow) types.Message {
	msg := types.Message{
		ID:     row.ID,
		Text:   row.Content,
		IsUser: row.IsUser,
		Kind:   types.MessageKind(row.Kind),
	}
	if row.CreatedAt != "" {
		if createdAt, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
			msg.CreatedAt = createdAt
		}
	}
	if row.Payload != "" {
		var payload struct {
			TableOfContents []string               `json:"table_of_contents"`
			Section         string                 `json:"section"`
			BlockType       string                 `json:"block_type"`
			ImagePrompt     string                 `json:"image_prompt"`
			ImageURL        string                 `json:"image_url"`
			Quiz            *types.Quiz            `json:"quiz"`
			Error           *types.GenerationError `json:"error"`
		}
		if err := json.Unmarshal([]byte(row.Payload), &payload); err == nil {
			msg.TableOfContents = payload.TableOfContents
			msg.Section = payload.Section
			msg.BlockType = payload.BlockType
			msg.ImagePrompt = payload.ImagePrompt
			msg.ImageURL = payload.ImageURL
			msg.Quiz = payload.Quiz
			msg.Error = payload.Error
		}
	}
	return msg
}
