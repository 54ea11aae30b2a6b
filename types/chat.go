package types

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Success      bool         `json:"success"`
	SessionID    string       `json:"session_id"`
	UserMessage  string       `json:"user_message,omitempty"`
	Messages     []Message    `json:"messages,omitempty"` // messages appended by this request
	Topic        TopicSession `json:"topic"`
	ErrorMessage string       `json:"error,omitempty"` // only set on failure
}

type GetMessagesResponse struct {
	Success      bool      `json:"success"`
	Messages     []Message `json:"messages"`
	ErrorMessage string    `json:"error,omitempty"`
}

type SectionRequest struct {
	SessionID string `json:"session_id"`
	Section   string `json:"section"`
}

type BlockRequest struct {
	SessionID string `json:"session_id"`
	BlockType string `json:"block_type"`
}

type RelatedTopicsResponse struct {
	Success      bool     `json:"success"`
	Topics       []string `json:"topics"`
	ErrorMessage string   `json:"error,omitempty"`
}

type ProgressResponse struct {
	Success      bool         `json:"success"`
	Topic        TopicSession `json:"topic"`
	ErrorMessage string       `json:"error,omitempty"`
}

type ResetRequest struct {
	SessionID string `json:"session_id,omitempty"`
}
