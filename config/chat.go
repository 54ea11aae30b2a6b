package config

import "time"

// Chat tuning configuration
var ChatConfig = struct {
	SubmissionCooldown time.Duration
	MaxSections        int
	MaxRelatedTopics   int
	MinParsedSections  int
	DefaultAgeRange    string
	DefaultLanguage    string
}{
	SubmissionCooldown: 500 * time.Millisecond,
	MaxSections:        5,
	MaxRelatedTopics:   5,
	MinParsedSections:  3,
	DefaultAgeRange:    "8-10",
	DefaultLanguage:    "en",
}

// Phrases that mark a submission as a continuation of the current topic
// rather than the start of a new one
var ContinuationPrefixes = []string{
	"tell me more",
	"can you explain",
	"what about",
}

// Leading phrases stripped from user input when extracting a topic name
var TopicPrefixes = []string{
	"tell me about",
	"what is",
	"show me",
	"explain",
}

// Section titles containing any of these are dropped from a parsed
// table of contents
var BannedSectionPhrases = []string{
	"welcome",
	"introduction",
	"get started",
	"conclusion",
	"summary",
	"let's explore",
	"what we'll cover",
	"table of content",
}

// Exploration block types constants
const (
	BlockDidYouKnow    = "did-you-know"
	BlockMindBlowing   = "mind-blowing"
	BlockAmazingStory  = "amazing-stories"
	BlockSeeIt         = "see-it"
	BlockTestKnowledge = "test-knowledge"
)

// Learning activity types constants
const (
	ActivityTypeMessage          = "message"
	ActivityTypeTopicStarted     = "topic_started"
	ActivityTypeSectionCompleted = "section_completed"
	ActivityTypeQuizAnswered     = "quiz_answered"
	ActivityTypeImageGenerated   = "image_generated"
)
