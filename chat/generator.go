package chat

import (
	"errors"

	"digitull1/wonderwhiz-api/types"
)

// Generator is the slice of the LLM client the chat core depends on.
// Implemented by *llm.Client; tests substitute fakes.
type Generator interface {
	GenerateResponse(prompt, ageRange, language string) (string, error)
	GenerateQuiz(topic, language string) (types.Quiz, error)
	GenerateImage(prompt string) (string, error)
}

var (
	// ErrAlreadyProcessing is returned when a submission arrives while
	// another one is still in flight (or inside the cooldown window)
	ErrAlreadyProcessing = errors.New("a message is already being processed")

	ErrEmptyMessage  = errors.New("message is empty")
	ErrNoActiveTopic = errors.New("no active topic")
)
