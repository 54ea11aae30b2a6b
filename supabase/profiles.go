package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/supabase-go"

	"digitull1/wonderwhiz-api/types"
)

// GetProfile fetches the child's stored profile, if any
func GetProfile(client *supabase.Client, userID string) (types.Profile, bool, error) {
	resp, _, err := client.From("profiles").
		Select("user_id, username, age_range, avatar, language, updated_at", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()
	if err != nil {
		return types.Profile{}, false, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var profiles []types.Profile
	if err := json.Unmarshal(resp, &profiles); err != nil {
		return types.Profile{}, false, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if len(profiles) == 0 {
		return types.Profile{}, false, nil
	}
	return profiles[0], true, nil
}

// UpsertProfile stores the profile, replacing any previous row for the user
func UpsertProfile(client *supabase.Client, profile types.Profile) error {
	now := time.Now()
	profile.UpdatedAt = &now

	_, _, err := client.From("profiles").
		Upsert(profile, "user_id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
