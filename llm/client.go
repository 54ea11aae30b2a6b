package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/types"
)

// GenerateResponse produces free-form text for the given prompt, framed for
// the child's age range and language
func (c *Client) GenerateResponse(prompt, ageRange, language string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("empty prompt")
	}

	body := map[string]interface{}{
		"model": c.chatModel,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": BuildSystemPrompt(ageRange, language),
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.7,
		"max_tokens":  800,
		"top_p":       0.9,
	}

	res, err := c.postJSON(c.chatURL, body)
	if err != nil {
		return "", err
	}

	text, err := extractTextFromChatResponse(res)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// GenerateQuiz produces a single multiple-choice question about the topic.
// The response must be JSON; parsing is attempted with the same strategy
// chain used elsewhere, and any failure is returned to the caller so it can
// substitute the placeholder quiz.
func (c *Client) GenerateQuiz(topic, language string) (types.Quiz, error) {
	body := map[string]interface{}{
		"model": c.chatModel,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": BuildSystemPrompt(config.ChatConfig.DefaultAgeRange, language),
			},
			{
				"role":    "user",
				"content": BuildQuizPrompt(topic, language),
			},
		},
		"temperature": 0.3,
		"max_tokens":  400,
	}

	res, err := c.postJSON(c.chatURL, body)
	if err != nil {
		return types.Quiz{}, err
	}

	text, err := extractTextFromChatResponse(res)
	if err != nil {
		return types.Quiz{}, err
	}

	quiz, err := parseQuizResponse(text)
	if err != nil {
		config.Logger.Warn("Failed to parse quiz response: ", err)
		return types.Quiz{}, err
	}

	return quiz, nil
}

// GenerateImage produces an image URL for the prompt. Image generation
// always goes through OpenAI regardless of the chat provider.
func (c *Client) GenerateImage(prompt string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	body := map[string]interface{}{
		"model":  "dall-e-3",
		"prompt": BuildImagePrompt(prompt),
		"n":      1,
		"size":   "1024x1024",
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", openaiImageURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	data, ok := res["data"].([]interface{})
	if !ok || len(data) == 0 {
		return "", fmt.Errorf("no images returned")
	}
	first, ok := data[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid image format")
	}
	url, ok := first["url"].(string)
	if !ok || url == "" {
		return "", fmt.Errorf("no url in image response")
	}

	return url, nil
}

func (c *Client) postJSON(url string, body map[string]interface{}) (map[string]interface{}, error) {
	apiKey := os.Getenv(c.keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not set", c.keyEnv)
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	return res, nil
}

// Extract text from a chat-completion response with proper error handling
func extractTextFromChatResponse(res map[string]interface{}) (string, error) {
	choices, ok := res["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid choice format")
	}

	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("no message in choice")
	}

	content, ok := message["content"].(string)
	if !ok {
		return "", fmt.Errorf("no content in message")
	}

	return content, nil
}
