package chat

import (
	"fmt"
	"regexp"
	"strings"

	"digitull1/wonderwhiz-api/config"
)

// Parsing turns one block of free-form generated text into an ordered list
// of clean section or topic strings. Each extraction pattern is a named
// strategy; strategies are tried in strict priority order and the first one
// that matches wins.

type extractStrategy struct {
	name    string
	extract func(string) []string
}

var sectionStrategies = []extractStrategy{
	{"numbered", extractNumbered},
	{"bulleted", extractBulleted},
	{"bold", extractBold},
	{"lines", extractCandidateLines},
}

var topicStrategies = []extractStrategy{
	{"numbered", extractNumbered},
	{"bulleted", extractBulleted},
	{"comma", extractCommaSeparated},
	{"semicolon", extractSemicolonSeparated},
	{"raw", extractRawLines},
}

// ParseSections converts generated text into a table of contents for the
// topic. A strategy only wins with at least MinParsedSections candidates
// surviving the banned-phrase filter; otherwise the result is discarded and
// the deterministic keyword template takes over.
func ParseSections(text, topic string) []string {
	for _, strategy := range sectionStrategies {
		candidates := strategy.extract(text)
		if len(candidates) < config.ChatConfig.MinParsedSections {
			continue
		}
		kept := filterBanned(candidates)
		if len(kept) < config.ChatConfig.MinParsedSections {
			break
		}
		return capEntries(kept, config.ChatConfig.MaxSections)
	}
	return FallbackSections(topic)
}

// ParseTopics is the simpler variant used for related and suggested topics:
// first strategy with at least one surviving candidate wins, no template
// fallback, empty input yields an empty list.
func ParseTopics(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []string{}
	}
	trimmed = stripIntroSentence(trimmed)

	for _, strategy := range topicStrategies {
		kept := filterBanned(strategy.extract(trimmed))
		if len(kept) >= 1 {
			return capEntries(kept, config.ChatConfig.MaxRelatedTopics)
		}
	}
	return []string{}
}

var numberedRegex = regexp.MustCompile(`^\s*(?:\*\*)?\s*\d+[.)]\s*(.+?)\s*(?:\*\*)?\s*$`)

// Lines shaped like "1. Title" or "**2. Title**"
func extractNumbered(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if m := numberedRegex.FindStringSubmatch(line); m != nil {
			out = appendClean(out, m[1])
		}
	}
	return out
}

var bulletRegex = regexp.MustCompile(`^\s*[•*\-]\s+(.+)$`)

// Lines starting with a bullet marker. The marker needs trailing whitespace
// so a **bold** line is not mistaken for a bullet.
func extractBulleted(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if m := bulletRegex.FindStringSubmatch(line); m != nil {
			out = appendClean(out, m[1])
		}
	}
	return out
}

var boldRegex = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Substrings wrapped in **bold** markers
func extractBold(text string) []string {
	var out []string
	for _, m := range boldRegex.FindAllStringSubmatch(text, -1) {
		out = appendClean(out, m[1])
	}
	return out
}

// Non-empty lines between 10 and 100 characters, capped at 5
func extractCandidateLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= 10 && len(trimmed) <= 100 {
			out = appendClean(out, trimmed)
			if len(out) == 5 {
				break
			}
		}
	}
	return out
}

func extractCommaSeparated(text string) []string {
	if !strings.Contains(text, ",") {
		return nil
	}
	var out []string
	for _, part := range strings.Split(text, ",") {
		out = appendClean(out, part)
	}
	return out
}

func extractSemicolonSeparated(text string) []string {
	if !strings.Contains(text, ";") {
		return nil
	}
	var out []string
	for _, part := range strings.Split(text, ";") {
		out = appendClean(out, part)
	}
	return out
}

func extractRawLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = appendClean(out, line)
	}
	return out
}

func appendClean(out []string, raw string) []string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, "*\"")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return out
	}
	return append(out, cleaned)
}

// Drops candidates containing a banned generic phrase
func filterBanned(candidates []string) []string {
	var kept []string
	for _, candidate := range candidates {
		lowered := strings.ToLower(candidate)
		banned := false
		for _, phrase := range config.BannedSectionPhrases {
			if strings.Contains(lowered, phrase) {
				banned = true
				break
			}
		}
		if !banned {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func capEntries(entries []string, max int) []string {
	if len(entries) > max {
		return entries[:max]
	}
	return entries
}

// Drops a leading "Here are some topics:" style line so the first strategy
// does not trip over it
func stripIntroSentence(text string) string {
	lines := strings.SplitN(text, "\n", 2)
	if len(lines) == 2 && strings.HasSuffix(strings.TrimSpace(lines[0]), ":") {
		return strings.TrimSpace(lines[1])
	}
	return text
}

// FallbackSections is the deterministic, keyword-driven table of contents
// used when no usable sections could be parsed. Not generated; never fails.
func FallbackSections(topic string) []string {
	lowered := strings.ToLower(topic)
	switch {
	case strings.Contains(lowered, "animal"):
		return []string{
			fmt.Sprintf("What makes %s special", topic),
			"Where they live",
			"What they eat",
			"How they protect themselves",
			"Their surprising superpowers",
		}
	case strings.Contains(lowered, "space"), strings.Contains(lowered, "planet"):
		return []string{
			fmt.Sprintf("A journey into %s", topic),
			"Stars and how they shine",
			"Exploring the planets",
			"Astronauts and rockets",
			"Mysteries still to solve",
		}
	default:
		return []string{
			fmt.Sprintf("What is %s", topic),
			fmt.Sprintf("The story of %s", topic),
			fmt.Sprintf("How %s works", topic),
			fmt.Sprintf("Amazing facts about %s", topic),
			fmt.Sprintf("Why %s matters to you", topic),
		}
	}
}

// RelatedFallbackTopics is the fixed list substituted when related-topics
// generation fails. Space-themed placeholder, not content-aware.
func RelatedFallbackTopics() []string {
	return []string{
		"How do rockets fly?",
		"What is a black hole?",
		"A day in the life of an astronaut",
		"The planets of our solar system",
		"Why does the moon change shape?",
	}
}
