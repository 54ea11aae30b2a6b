package llm

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

type Model string

const (
	OpenAI Model = "openai"
	Groq   Model = "groq"
)

const (
	openaiChatURL  = "https://api.openai.com/v1/chat/completions"
	openaiImageURL = "https://api.openai.com/v1/images/generations"
	groqChatURL    = "https://api.groq.com/openai/v1/chat/completions"
)

// Client talks to a hosted chat-completion provider. Both supported
// providers speak the OpenAI wire shape, so the differences are just
// endpoint, key and model name.
type Client struct {
	model      Model
	chatURL    string
	keyEnv     string
	chatModel  string
	httpClient *http.Client
}

// NewClient creates a generation client for the configured provider
func NewClient(model Model) (*Client, error) {
	client := &Client{
		model: model,
		// Timeout bounds how long a submission can stay in flight
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	switch model {
	case OpenAI:
		client.chatURL = openaiChatURL
		client.keyEnv = "OPENAI_API_KEY"
		client.chatModel = "gpt-4o-mini"
	case Groq:
		client.chatURL = groqChatURL
		client.keyEnv = "GROQ_API_KEY"
		client.chatModel = "llama-3.1-8b-instant"
	default:
		return nil, fmt.Errorf("unsupported model: %s (supported: %s, %s)", model, OpenAI, Groq)
	}

	if os.Getenv(client.keyEnv) == "" {
		return nil, fmt.Errorf("%s not set", client.keyEnv)
	}

	return client, nil
}
