package chat

import (
	"math"

	"digitull1/wonderwhiz-api/config"
)

// MarkSectionVisited records a section visit and recomputes learning
// progress. Revisiting a completed section is a no-op for progress but
// still moves CurrentSection for navigation.
func (s *Session) MarkSectionVisited(section string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.topic.CurrentSection = section

	for _, done := range s.topic.CompletedSections {
		if done == section {
			return
		}
	}
	s.topic.CompletedSections = append(s.topic.CompletedSections, section)

	total := len(s.toc)
	if total == 0 {
		total = config.ChatConfig.MaxSections
	}

	progress := int(math.Round(float64(len(s.topic.CompletedSections)) / float64(total) * 100))
	if progress > 100 {
		progress = 100
	}
	s.topic.LearningProgress = progress

	if len(s.toc) > 0 && coversAll(s.topic.CompletedSections, s.toc) {
		s.topic.LearningComplete = true
		s.topic.LearningProgress = 100
	}
}

func coversAll(completed, sections []string) bool {
	for _, section := range sections {
		found := false
		for _, done := range completed {
			if done == section {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
