package types

import (
	"time"
)

// MessageKind discriminates the payload a message carries. A message holds
// at most one of the kind-specific payload fields below.
type MessageKind string

const (
	MessagePlain        MessageKind = "plain"
	MessageIntroduction MessageKind = "introduction"
	MessageToc          MessageKind = "toc"
	MessageSection      MessageKind = "section"
	MessageFact         MessageKind = "fact"
	MessageImage        MessageKind = "image"
	MessageQuiz         MessageKind = "quiz"
	MessageError        MessageKind = "error"
)

type Message struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	IsUser    bool        `json:"is_user"`
	Kind      MessageKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`

	// Only on the message that introduces a topic's curriculum
	TableOfContents []string `json:"table_of_contents,omitempty"`

	// Only on MessageSection
	Section string `json:"section,omitempty"`

	// Only on block-triggered messages (fact, image, quiz)
	BlockType   string `json:"block_type,omitempty"`
	ImagePrompt string `json:"image_prompt,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Quiz        *Quiz  `json:"quiz,omitempty"`

	// Only on MessageError, recorded in place of generated content
	Error *GenerationError `json:"error,omitempty"`
}

type GenerationError struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type Quiz struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	FunFact       string   `json:"funFact,omitempty"`
}
