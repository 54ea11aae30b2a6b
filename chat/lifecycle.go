package chat

import (
	"strings"

	"digitull1/wonderwhiz-api/config"
)

// IsNewTopicRequest classifies a submission as starting a new topic (true)
// or continuing the current one (false). This is a heuristic: input that
// happens to contain the current topic's name as a substring is treated as
// continuation even when the child meant something new.
func IsNewTopicRequest(input, currentTopic string, sectionsGenerated bool) bool {
	if currentTopic == "" {
		return true
	}
	// the previous attempt never produced sections, treat it as abandoned
	if !sectionsGenerated {
		return true
	}

	lowered := strings.ToLower(strings.TrimSpace(input))

	if strings.Contains(lowered, strings.ToLower(currentTopic)) {
		return false
	}
	for _, prefix := range config.ContinuationPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return false
		}
	}
	if strings.Contains(lowered, "how about") {
		return false
	}

	return true
}

// CleanTopic extracts a topic name from raw input by stripping a fixed set
// of leading phrases and trailing punctuation
func CleanTopic(input string) string {
	cleaned := strings.TrimSpace(input)
	lowered := strings.ToLower(cleaned)

	for _, prefix := range config.TopicPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
			break
		}
	}

	cleaned = strings.TrimRight(cleaned, "?!. ")
	if cleaned == "" {
		return strings.TrimSpace(input)
	}
	return cleaned
}

// StarterPrompts are the suggestions shown while the chat is still empty
var StarterPrompts = []string{
	"Tell me about dinosaurs",
	"How do volcanoes work?",
	"What is a rainbow made of?",
	"Why do cats purr?",
	"Show me the deepest part of the ocean",
}
