package chat

import (
	"errors"
	"strings"
	"sync"

	"digitull1/wonderwhiz-api/types"
)

// fakeGenerator scripts generation results for tests. Responses are consumed
// in order; once drained the last one repeats.
type fakeGenerator struct {
	mu        sync.Mutex
	responses []string
	err       error
	quiz      types.Quiz
	quizErr   error
	imageURL  string
	imageErr  error

	calls       int
	prompts     []string
	proceed     chan struct{} // when set, GenerateResponse blocks until closed
	callStarted chan struct{} // when set, signalled once per call
}

func (f *fakeGenerator) GenerateResponse(prompt, ageRange, language string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	proceed := f.proceed
	started := f.callStarted
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if proceed != nil {
		<-proceed
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "ok", nil
	}
	response := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return response, nil
}

func (f *fakeGenerator) GenerateQuiz(topic, language string) (types.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.quizErr != nil {
		return types.Quiz{}, f.quizErr
	}
	return f.quiz, nil
}

func (f *fakeGenerator) GenerateImage(prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.imageErr != nil {
		return "", f.imageErr
	}
	if f.imageURL == "" {
		return "https://example.com/generated.png", nil
	}
	return f.imageURL, nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeGenerator) countPromptsContaining(substr string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, prompt := range f.prompts {
		if strings.Contains(prompt, substr) {
			count++
		}
	}
	return count
}

var errGeneration = errors.New("provider unavailable")

const tocText = "1. How volcanoes form\n2. Inside a volcano\n3. Famous eruptions\n4. Volcanoes under the sea\n5. Living near a volcano"

func newTestSession(gen Generator) *Session {
	return NewSession("test-session", types.Profile{AgeRange: "8-10", Language: "en"}, gen, 0)
}
