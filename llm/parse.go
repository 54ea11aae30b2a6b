package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"digitull1/wonderwhiz-api/types"
)

// Robust quiz parsing that tries multiple JSON extraction methods, since
// models wrap JSON in prose or code fences more often than not
func parseQuizResponse(text string) (types.Quiz, error) {
	strategies := []func(string) (string, bool){
		extractCompleteJSON,
		extractJSONFromCodeBlock,
		extractJSONFromBraces,
	}

	for _, strategy := range strategies {
		jsonStr, found := strategy(text)
		if !found {
			continue
		}
		var quiz types.Quiz
		if err := json.Unmarshal([]byte(jsonStr), &quiz); err != nil {
			continue
		}
		if err := validateQuiz(quiz); err != nil {
			continue
		}
		return quiz, nil
	}

	return types.Quiz{}, fmt.Errorf("no valid quiz JSON found in response")
}

func validateQuiz(quiz types.Quiz) error {
	if strings.TrimSpace(quiz.Question) == "" {
		return fmt.Errorf("empty question")
	}
	if len(quiz.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(quiz.Options))
	}
	if quiz.CorrectAnswer < 0 || quiz.CorrectAnswer >= len(quiz.Options) {
		return fmt.Errorf("correctAnswer %d out of range", quiz.CorrectAnswer)
	}
	return nil
}

// Strategy 1: the entire text is JSON
func extractCompleteJSON(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	if json.Valid([]byte(cleaned)) {
		return cleaned, true
	}
	return "", false
}

// Strategy 2: JSON inside a markdown code block
var codeBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

func extractJSONFromCodeBlock(text string) (string, bool) {
	matches := codeBlockRegex.FindStringSubmatch(text)
	if len(matches) > 1 {
		candidate := strings.TrimSpace(matches[1])
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// Strategy 3: first balanced brace-delimited object in the text
func extractJSONFromBraces(text string) (string, bool) {
	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return "", false
	}

	braceCount := 0
	inString := false
	escaped := false

	for i := startIdx; i < len(text); i++ {
		char := text[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}

		if !inString {
			if char == '{' {
				braceCount++
			} else if char == '}' {
				braceCount--
				if braceCount == 0 {
					candidate := text[startIdx : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate, true
					}
					return "", false
				}
			}
		}
	}

	return "", false
}
