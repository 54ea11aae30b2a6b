package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/supabase-go"

	"digitull1/wonderwhiz-api/types"
)

// GetOrCreateSessionMetrics returns the metrics row for a session, creating
// it on first use
func GetOrCreateSessionMetrics(client *supabase.Client, sessionID, userID string) (types.SessionMetrics, error) {
	resp, _, err := client.From("session_metrics").
		Select("*", "", false).
		Eq("session_id", sessionID).
		Execute()
	if err != nil {
		return types.SessionMetrics{}, fmt.Errorf("failed to fetch session metrics: %w", err)
	}

	var metrics []types.SessionMetrics
	if err := json.Unmarshal(resp, &metrics); err != nil {
		return types.SessionMetrics{}, fmt.Errorf("failed to unmarshal metrics: %w", err)
	}

	if len(metrics) > 0 {
		return metrics[0], nil
	}

	newMetrics := types.SessionMetrics{
		SessionID:    sessionID,
		UserID:       userID,
		LastActiveAt: time.Now(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	_, _, err = client.From("session_metrics").Insert(newMetrics, false, "", "", "").Execute()
	if err != nil {
		return types.SessionMetrics{}, fmt.Errorf("failed to create session metrics: %w", err)
	}

	return newMetrics, nil
}

// IncrementSessionCounter bumps one of the session counters
func IncrementSessionCounter(client *supabase.Client, sessionID, userID, counterType string) error {
	var field string
	switch counterType {
	case "message":
		field = "message_count"
	case "topic_started":
		field = "topics_explored"
	case "section_completed":
		field = "sections_completed"
	case "quiz_answered":
		field = "quizzes_taken"
	default:
		return fmt.Errorf("unknown counter type: %s", counterType)
	}

	metrics, err := GetOrCreateSessionMetrics(client, sessionID, userID)
	if err != nil {
		return err
	}

	current := map[string]int{
		"message_count":      metrics.MessageCount,
		"topics_explored":    metrics.TopicsExplored,
		"sections_completed": metrics.SectionsCompleted,
		"quizzes_taken":      metrics.QuizzesTaken,
	}

	updates := map[string]interface{}{
		field:            current[field] + 1,
		"updated_at":     time.Now(),
		"last_active_at": time.Now(),
	}

	_, _, err = client.From("session_metrics").
		Update(updates, "", "").
		Eq("session_id", sessionID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update session metrics: %w", err)
	}

	return nil
}
