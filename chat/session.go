package chat

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/llm"
	"digitull1/wonderwhiz-api/types"
)

// Session owns all conversational state for one chat: the message history,
// the topic session, the submission guard and the per-session caches.
// Nothing here is module-global, so sessions in the same process cannot
// interfere with each other.
type Session struct {
	ID string

	mu      sync.Mutex
	profile types.Profile
	topic   types.TopicSession
	toc     []string

	guard         *SubmissionGuard
	store         *MessageStore
	related       *RelatedTopicsCache
	sectionsByKey map[contentKey][]string

	generator Generator
	welcomed  bool
}

func NewSession(id string, profile types.Profile, gen Generator, cooldown time.Duration) *Session {
	if profile.AgeRange == "" {
		profile.AgeRange = config.ChatConfig.DefaultAgeRange
	}
	if profile.Language == "" {
		profile.Language = config.ChatConfig.DefaultLanguage
	}
	return &Session{
		ID:            id,
		profile:       profile,
		topic:         emptyTopicSession(),
		guard:         NewSubmissionGuard(cooldown),
		store:         NewMessageStore(),
		related:       NewRelatedTopicsCache(),
		sectionsByKey: make(map[contentKey][]string),
		generator:     gen,
	}
}

func emptyTopicSession() types.TopicSession {
	return types.TopicSession{CompletedSections: []string{}}
}

// EnsureWelcome appends the greeting message once per session. Generation
// failure degrades to the canned greeting.
func (s *Session) EnsureWelcome() {
	s.mu.Lock()
	if s.welcomed {
		s.mu.Unlock()
		return
	}
	s.welcomed = true
	profile := s.profile
	s.mu.Unlock()

	text, err := s.generator.GenerateResponse(
		llm.BuildWelcomePrompt(profile.Username, profile.AgeRange),
		profile.AgeRange, profile.Language)
	if err != nil || strings.TrimSpace(text) == "" {
		text = llm.FallbackWelcome(profile.Username)
	}
	s.store.Append(types.Message{Text: text, Kind: types.MessageIntroduction})
}

// ProcessMessage runs one user submission through the topic lifecycle. It is
// single-flight per session: a second call while one is in flight fails with
// ErrAlreadyProcessing and must be resubmitted by the user.
func (s *Session) ProcessMessage(input string) ([]types.Message, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	if err := s.guard.TryBegin(); err != nil {
		return nil, err
	}
	defer s.guard.Release()

	s.mu.Lock()
	profile := s.profile
	newTopic := IsNewTopicRequest(trimmed, s.topic.SelectedTopic, s.topic.TopicSectionsGenerated)
	s.mu.Unlock()

	if newTopic {
		return s.startTopic(trimmed, profile), nil
	}
	return s.continueTopic(trimmed, profile), nil
}

// startTopic resets the topic session and generates a table of contents for
// the cleaned topic, at most once per (topic, age range, language) key
func (s *Session) startTopic(input string, profile types.Profile) []types.Message {
	topic := CleanTopic(input)
	key := contentKey{Topic: topic, AgeRange: profile.AgeRange, Language: profile.Language}

	s.mu.Lock()
	s.topic = emptyTopicSession()
	s.topic.SelectedTopic = topic
	s.toc = nil
	cached, alreadyGenerated := s.sectionsByKey[key]
	s.mu.Unlock()

	userMsg := s.store.Append(types.Message{Text: input, IsUser: true, Kind: types.MessagePlain})

	if alreadyGenerated {
		// a re-trigger for a key that already completed; reuse the parsed
		// sections instead of issuing a second generation request
		config.Logger.Debug("Sections already generated for topic: ", topic)
		s.mu.Lock()
		if s.topic.SelectedTopic == topic {
			s.topic.TopicSectionsGenerated = true
			s.toc = cached
		}
		s.mu.Unlock()
		tocMsg := s.store.Append(types.Message{
			Kind:            types.MessageToc,
			Text:            fmt.Sprintf("Here's our learning adventure about %s! Pick a section to dive in.", topic),
			TableOfContents: cached,
		})
		return []types.Message{userMsg, tocMsg}
	}

	text, err := s.generator.GenerateResponse(llm.BuildSectionsPrompt(topic), profile.AgeRange, profile.Language)
	if err != nil {
		config.Logger.Error("Failed to generate sections: ", err)
		// TopicSectionsGenerated stays false so a resubmission retries
		errMsg := s.store.Append(types.Message{
			Kind: types.MessageError,
			Text: fmt.Sprintf("Oops! I couldn't plan our adventure about %s. Want to try asking again?", topic),
			Error: &types.GenerationError{
				Message: "Failed to generate sections",
				Details: err.Error(),
			},
		})
		return []types.Message{userMsg, errMsg}
	}

	sections := ParseSections(text, topic)

	s.mu.Lock()
	s.sectionsByKey[key] = sections
	// only apply if this topic is still the selected one; a stale
	// completion must not flip state for a newer topic
	if s.topic.SelectedTopic == topic {
		s.topic.TopicSectionsGenerated = true
		s.toc = sections
	}
	s.mu.Unlock()

	tocMsg := s.store.Append(types.Message{
		Kind:            types.MessageToc,
		Text:            fmt.Sprintf("Here's our learning adventure about %s! Pick a section to dive in.", topic),
		TableOfContents: sections,
	})

	// warm the related-topics cache off the request path
	go s.related.Prefetch(s.generator, topic, profile.AgeRange, profile.Language)

	return []types.Message{userMsg, tocMsg}
}

// continueTopic passes the literal input through to the generator and
// appends the reply; no table of contents is regenerated
func (s *Session) continueTopic(input string, profile types.Profile) []types.Message {
	userMsg := s.store.Append(types.Message{Text: input, IsUser: true, Kind: types.MessagePlain})

	text, err := s.generator.GenerateResponse(input, profile.AgeRange, profile.Language)
	if err != nil {
		config.Logger.Error("Failed to generate response: ", err)
		errMsg := s.store.Append(types.Message{
			Kind: types.MessageError,
			Text: "Oops! My thinking cap slipped off. Could you ask me that again?",
			Error: &types.GenerationError{
				Message: "Failed to generate response",
				Details: err.Error(),
			},
		})
		return []types.Message{userMsg, errMsg}
	}

	reply := s.store.Append(types.Message{Text: text, Kind: types.MessagePlain})
	return []types.Message{userMsg, reply}
}

// OpenSection generates the content of one table-of-contents section and
// marks it visited
func (s *Session) OpenSection(section string) (types.Message, error) {
	s.mu.Lock()
	topic := s.topic.SelectedTopic
	profile := s.profile
	s.mu.Unlock()

	if topic == "" {
		return types.Message{}, ErrNoActiveTopic
	}

	text, err := s.generator.GenerateResponse(
		llm.BuildSectionContentPrompt(topic, section),
		profile.AgeRange, profile.Language)
	if err != nil {
		config.Logger.Error("Failed to generate section content: ", err)
		errMsg := s.store.Append(types.Message{
			Kind:    types.MessageError,
			Text:    fmt.Sprintf("Oops! I couldn't open \"%s\" right now. Let's try again in a moment.", section),
			Section: section,
			Error: &types.GenerationError{
				Message: "Failed to generate section content",
				Details: err.Error(),
			},
		})
		return errMsg, nil
	}

	msg := s.store.Append(types.Message{
		Kind:    types.MessageSection,
		Text:    text,
		Section: section,
	})
	s.MarkSectionVisited(section)
	return msg, nil
}

// ExploreBlock handles a fact, image or quiz exploration action for the
// current topic. Quiz and image failures substitute placeholders; text
// failures append an error-flagged message.
func (s *Session) ExploreBlock(blockType string) (types.Message, error) {
	s.mu.Lock()
	topic := s.topic.SelectedTopic
	profile := s.profile
	s.mu.Unlock()

	if topic == "" {
		return types.Message{}, ErrNoActiveTopic
	}

	switch blockType {
	case config.BlockSeeIt:
		url, err := s.generator.GenerateImage(topic)
		if err != nil {
			config.Logger.Warn("Image generation failed, using fallback: ", err)
			url = llm.FallbackImageURL(topic)
		}
		return s.store.Append(types.Message{
			Kind:        types.MessageImage,
			Text:        fmt.Sprintf("Here's a picture of %s!", topic),
			BlockType:   blockType,
			ImagePrompt: topic,
			ImageURL:    url,
		}), nil

	case config.BlockTestKnowledge:
		quiz, err := s.generator.GenerateQuiz(topic, profile.Language)
		if err != nil {
			config.Logger.Warn("Quiz generation failed, using placeholder: ", err)
			quiz = llm.PlaceholderQuiz(topic)
		}
		return s.store.Append(types.Message{
			Kind:      types.MessageQuiz,
			Text:      fmt.Sprintf("Quiz time! Let's see what you remember about %s.", topic),
			BlockType: blockType,
			Quiz:      &quiz,
		}), nil

	default:
		text, err := s.generator.GenerateResponse(
			llm.BuildBlockPrompt(blockType, topic),
			profile.AgeRange, profile.Language)
		if err != nil {
			config.Logger.Error("Failed to generate block content: ", err)
			return s.store.Append(types.Message{
				Kind:      types.MessageError,
				Text:      "Oops! That fact wriggled away. Try tapping again!",
				BlockType: blockType,
				Error: &types.GenerationError{
					Message: "Failed to generate block content",
					Details: err.Error(),
				},
			}), nil
		}
		return s.store.Append(types.Message{
			Kind:      types.MessageFact,
			Text:      text,
			BlockType: blockType,
		}), nil
	}
}

// RelatedTopics returns suggestions for the current topic, generating and
// caching them on first use
func (s *Session) RelatedTopics() ([]string, error) {
	s.mu.Lock()
	topic := s.topic.SelectedTopic
	profile := s.profile
	s.mu.Unlock()

	if topic == "" {
		return nil, ErrNoActiveTopic
	}
	return s.related.Get(s.generator, topic, profile.AgeRange, profile.Language), nil
}

func (s *Session) Messages() []types.Message {
	return s.store.Messages()
}

func (s *Session) Topic() types.TopicSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTopicSession(s.topic)
}

func (s *Session) Profile() types.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile applies profile changes. An age-range or language change
// also resets the topic session, since generated content is keyed to both.
func (s *Session) UpdateProfile(update types.UpdateProfileRequest) types.Profile {
	s.mu.Lock()
	reset := false
	if update.Username != "" {
		s.profile.Username = update.Username
	}
	if update.Avatar != "" {
		s.profile.Avatar = update.Avatar
	}
	if update.AgeRange != "" && update.AgeRange != s.profile.AgeRange {
		s.profile.AgeRange = update.AgeRange
		reset = true
	}
	if update.Language != "" && update.Language != s.profile.Language {
		s.profile.Language = update.Language
		reset = true
	}
	if reset {
		s.topic = emptyTopicSession()
		s.toc = nil
	}
	profile := s.profile
	s.mu.Unlock()
	return profile
}

// Reset clears the conversation and reinitializes all session state, then
// greets again
func (s *Session) Reset() {
	s.mu.Lock()
	s.topic = emptyTopicSession()
	s.toc = nil
	s.welcomed = false
	s.mu.Unlock()

	s.store.Clear()
	s.EnsureWelcome()
}

func cloneTopicSession(topic types.TopicSession) types.TopicSession {
	out := topic
	out.CompletedSections = append([]string{}, topic.CompletedSections...)
	return out
}
