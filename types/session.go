package types

import "time"

// TopicSession describes what the user is currently learning about. It is
// reset whenever a new topic begins.
type TopicSession struct {
	SelectedTopic          string   `json:"selected_topic,omitempty"`
	TopicSectionsGenerated bool     `json:"topic_sections_generated"`
	CompletedSections      []string `json:"completed_sections"`
	CurrentSection         string   `json:"current_section,omitempty"`
	LearningComplete       bool     `json:"learning_complete"`
	LearningProgress       int      `json:"learning_progress"`
}

// Session row persisted for history listing
type Session struct {
	ID        string     `json:"id,omitempty"` // <-- omitempty is critical
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type GetSessionsResponse struct {
	Success  bool      `json:"success"`
	Sessions []Session `json:"sessions"`
}

type GetActivityResponse struct {
	Success      bool               `json:"success"`
	Activities   []LearningActivity `json:"activities"`
	ErrorMessage string             `json:"error,omitempty"`
}

type SessionMetrics struct {
	SessionID         string    `json:"session_id"`
	UserID            string    `json:"user_id"`
	MessageCount      int       `json:"message_count"`
	TopicsExplored    int       `json:"topics_explored"`
	SectionsCompleted int       `json:"sections_completed"`
	QuizzesTaken      int       `json:"quizzes_taken"`
	LastActiveAt      time.Time `json:"last_active_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LearningActivity records a single learning event for analytics
type LearningActivity struct {
	ID           string    `json:"id,omitempty"`
	UserID       string    `json:"user_id"`
	SessionID    string    `json:"session_id"`
	ActivityType string    `json:"activity_type"` // "message", "topic_started", "section_completed", "quiz_answered", "image_generated"
	Content      string    `json:"content"`
	Metadata     string    `json:"metadata,omitempty"` // JSON string for additional context
	CreatedAt    time.Time `json:"created_at"`
}
