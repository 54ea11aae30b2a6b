package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"digitull1/wonderwhiz-api/types"
)

// TrackLearningActivity records a learning event with metadata for the
// parent dashboard. Called in goroutines off the request path; failures are
// logged by the caller and never fail the chat.
func TrackLearningActivity(client *supabase.Client, userID, sessionID, activityType, content string, metadata map[string]interface{}) error {
	metadataJSON, _ := json.Marshal(metadata)

	activity := types.LearningActivity{
		UserID:       userID,
		SessionID:    sessionID,
		ActivityType: activityType,
		Content:      content,
		Metadata:     string(metadataJSON),
		CreatedAt:    time.Now(),
	}

	_, _, err := client.From("learning_activities").Insert(activity, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to track learning activity: %w", err)
	}

	return nil
}

// GetLearningActivities fetches recent learning events for a user
func GetLearningActivities(client *supabase.Client, userID string, since time.Time, limit int) ([]types.LearningActivity, error) {
	resp, _, err := client.From("learning_activities").
		Select("*", "", false).
		Eq("user_id", userID).
		Gte("created_at", since.Format(time.RFC3339)).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch learning activities: %w", err)
	}

	var activities []types.LearningActivity
	if err := json.Unmarshal(resp, &activities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activities: %w", err)
	}

	return activities, nil
}
