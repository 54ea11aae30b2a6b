package types

import "time"

// Profile holds the child's onboarding choices. The API treats these as
// read-only configuration except for explicit profile updates, which also
// reset the topic session.
type Profile struct {
	UserID    string     `json:"user_id,omitempty"`
	Username  string     `json:"username,omitempty"`
	AgeRange  string     `json:"age_range"`
	Avatar    string     `json:"avatar,omitempty"`
	Language  string     `json:"language"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ProfileResponse struct {
	Success      bool    `json:"success"`
	Profile      Profile `json:"profile"`
	ErrorMessage string  `json:"error,omitempty"`
}

type UpdateProfileRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Username  string `json:"username,omitempty"`
	AgeRange  string `json:"age_range,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Language  string `json:"language,omitempty"`
}
