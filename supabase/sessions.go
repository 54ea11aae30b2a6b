package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"digitull1/wonderwhiz-api/types"
)

// RecordSession persists a session row so past adventures can be listed.
// The title is the first topic explored, falling back to a timestamp.
func RecordSession(client *supabase.Client, sessionID, userID, title string) error {
	if title == "" {
		title = time.Now().Format("Jan 2, 3:04PM")
	}
	session := types.Session{
		ID:     sessionID,
		UserID: userID,
		Title:  title,
	}

	_, _, err := client.From("sessions").
		Upsert(session, "id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// GetSessions lists the user's past sessions, newest first
func GetSessions(client *supabase.Client, userID string) ([]types.Session, error) {
	resp, _, err := client.From("sessions").
		Select("id, user_id, title, created_at", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	var sessions []types.Session
	if err := json.Unmarshal(resp, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sessions: %w", err)
	}
	return sessions, nil
}
