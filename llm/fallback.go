package llm

import (
	"fmt"
	"strings"

	"digitull1/wonderwhiz-api/types"
)

// PlaceholderQuiz is substituted when quiz generation fails. Fixed 4-option
// shape so the client always has something answerable.
func PlaceholderQuiz(topic string) types.Quiz {
	return types.Quiz{
		Question:      fmt.Sprintf("Which of these would help you learn more about %s?", topic),
		Options:       []string{"Asking questions", "Reading books", "Watching and observing", "All of these!"},
		CorrectAnswer: 3,
		FunFact:       "Curious people ask about 73 questions every day. Keep asking!",
	}
}

// Keyword-matched stock photos substituted when image generation fails
var fallbackImages = []struct {
	keyword string
	url     string
}{
	{"animal", "https://images.unsplash.com/photo-1474511320723-9a56873867b5"},
	{"dinosaur", "https://images.unsplash.com/photo-1519074069444-1ba4fff66d16"},
	{"space", "https://images.unsplash.com/photo-1451187580459-43490279c0fa"},
	{"planet", "https://images.unsplash.com/photo-1614732414444-096e5f1122d5"},
	{"ocean", "https://images.unsplash.com/photo-1439405326854-014607f694d7"},
	{"volcano", "https://images.unsplash.com/photo-1462332420958-a05d1e002413"},
	{"robot", "https://images.unsplash.com/photo-1485827404703-89b55fcc595e"},
}

const fallbackImageDefault = "https://images.unsplash.com/photo-1503676260728-1c00da094a0b"

// FallbackImageURL picks a stock photo whose keyword appears in the prompt
func FallbackImageURL(prompt string) string {
	lowered := strings.ToLower(prompt)
	for _, candidate := range fallbackImages {
		if strings.Contains(lowered, candidate.keyword) {
			return candidate.url
		}
	}
	return fallbackImageDefault
}

// FallbackWelcome is the canned greeting used when generation fails
func FallbackWelcome(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Hi there! I'm WonderWhiz, your learning buddy. What are you curious about today?"
	}
	return fmt.Sprintf("Hi %s! I'm WonderWhiz, your learning buddy. What are you curious about today?", name)
}
