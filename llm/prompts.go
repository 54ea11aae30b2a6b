package llm

import (
	"fmt"
	"strings"

	"digitull1/wonderwhiz-api/config"
)

// BuildSystemPrompt frames every generation for the child's age range and
// language. There is no dedicated wire-level request type for curriculum or
// related-topics generation; everything is prompt-engineering over the plain
// text endpoint.
func BuildSystemPrompt(ageRange, language string) string {
	return fmt.Sprintf(`You are WonderWhiz, a friendly and curious tutor for children.

AUDIENCE: a child aged %s. Use short sentences, vivid comparisons and a warm, playful tone. Never use frightening or inappropriate content.

LANGUAGE: respond in "%s".

STYLE:
- Be enthusiastic but accurate
- Explain ideas with everyday examples a child would recognise
- Sprinkle in a fun fact when it fits naturally
- Keep answers focused; do not pad with filler`, ageRange, language)
}

// BuildSectionsPrompt asks for the table of contents of a topic. Exactly one
// prompt per topic; the numbered-list format is what the parser expects
// first.
func BuildSectionsPrompt(topic string) string {
	return fmt.Sprintf(`A child wants to learn about "%s".

Create exactly 5 sections for a mini-course on this topic. Requirements:
- Each section must be specific to "%s", not generic
- Do NOT include introductory or closing sections such as "Welcome", "Introduction", "Get started", "Conclusion" or "Summary"
- Format the answer as a numbered list, one section per line, like:
1. First section title
2. Second section title

Only output the numbered list, nothing else.`, topic, topic)
}

// BuildSectionContentPrompt asks for the body of one section
func BuildSectionContentPrompt(topic, section string) string {
	return fmt.Sprintf(`The child is learning about "%s" and just opened the section "%s".

Teach this section in 2-3 short paragraphs written for a child. End with one question that makes them curious about what comes next.`, topic, section)
}

// BuildRelatedTopicsPrompt asks for follow-up topics after the current one
func BuildRelatedTopicsPrompt(topic string) string {
	return fmt.Sprintf(`A child just finished learning about "%s".

Suggest 5 related topics they might want to explore next. Keep each suggestion short (under 8 words) and exciting for a child. Format the answer as a numbered list, one topic per line. Only output the list.`, topic)
}

// BuildBlockPrompt asks for the text of one exploration block
func BuildBlockPrompt(blockType, topic string) string {
	switch blockType {
	case config.BlockMindBlowing:
		return fmt.Sprintf(`Share one mind-blowing fact about "%s" that would make a child say "wow!". 2-3 sentences.`, topic)
	case config.BlockAmazingStory:
		return fmt.Sprintf(`Tell a short, true, amazing story connected to "%s". Keep it under 120 words and child-friendly.`, topic)
	default:
		return fmt.Sprintf(`Share one surprising "did you know?" fact about "%s" a child would love. 2-3 sentences, starting with "Did you know".`, topic)
	}
}

// BuildQuizPrompt asks for a single multiple-choice question as JSON
func BuildQuizPrompt(topic, language string) string {
	return fmt.Sprintf(`Create one fun multiple-choice quiz question about "%s" for a child, in "%s".

Respond with valid JSON only, in exactly this shape:
{
  "question": "The question text",
  "options": ["option A", "option B", "option C", "option D"],
  "correctAnswer": 0,
  "funFact": "A short fun fact revealed after answering"
}

"correctAnswer" is the zero-based index of the right option. Do not include any text outside the JSON.`, topic, language)
}

// BuildWelcomePrompt asks for the greeting shown when a chat starts
func BuildWelcomePrompt(name, ageRange string) string {
	who := "a curious child"
	if strings.TrimSpace(name) != "" {
		who = name
	}
	return fmt.Sprintf(`Greet %s (age %s) as WonderWhiz starting a learning adventure. One short, warm paragraph inviting them to ask about anything they are curious about. No lists.`, who, ageRange)
}

// BuildImagePrompt wraps a raw prompt in child-friendly art direction
func BuildImagePrompt(prompt string) string {
	return fmt.Sprintf("A colorful, friendly, educational illustration for children: %s. Bright colors, soft shapes, no text in the image.", prompt)
}
