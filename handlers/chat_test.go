package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitull1/wonderwhiz-api/chat"
	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/handlers"
	"digitull1/wonderwhiz-api/routes"
	"digitull1/wonderwhiz-api/types"
)

const sectionsText = "1. How volcanoes form\n2. Inside a volcano\n3. Famous eruptions\n4. Volcanoes under the sea\n5. Living near a volcano"

const welcomeText = "Hi there, explorer!"

type scriptedGenerator struct {
	mu        sync.Mutex
	responses []string
}

func (g *scriptedGenerator) GenerateResponse(prompt, ageRange, language string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.responses) == 0 {
		return "ok", nil
	}
	response := g.responses[0]
	if len(g.responses) > 1 {
		g.responses = g.responses[1:]
	}
	return response, nil
}

func (g *scriptedGenerator) GenerateQuiz(topic, language string) (types.Quiz, error) {
	return types.Quiz{
		Question:      "Q?",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: 1,
	}, nil
}

func (g *scriptedGenerator) GenerateImage(prompt string) (string, error) {
	return "https://example.com/volcano.png", nil
}

func newTestServer(t *testing.T, gen chat.Generator) *httptest.Server {
	t.Helper()
	cooldown := config.ChatConfig.SubmissionCooldown
	config.ChatConfig.SubmissionCooldown = 0
	t.Cleanup(func() { config.ChatConfig.SubmissionCooldown = cooldown })
	handlers.Setup(chat.NewManager(gen))
	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func patchJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeChat(t *testing.T, resp *http.Response) types.ChatResponse {
	t.Helper()
	defer resp.Body.Close()
	var out types.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestChatHandlerStartsTopic(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{responses: []string{welcomeText, sectionsText}})

	resp := postJSON(t, server.URL+"/chat", types.ChatRequest{Message: "tell me about volcanoes"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeChat(t, resp)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, "volcanoes", out.Topic.SelectedTopic)

	require.Len(t, out.Messages, 2)
	assert.Equal(t, types.MessageToc, out.Messages[1].Kind)
	assert.Len(t, out.Messages[1].TableOfContents, 5)
}

func TestChatHandlerMissingMessage(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{})

	resp := postJSON(t, server.URL+"/chat", types.ChatRequest{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatHandlerReusesSession(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{responses: []string{welcomeText, sectionsText, "More about volcanoes."}})

	first := decodeChat(t, postJSON(t, server.URL+"/chat", types.ChatRequest{Message: "tell me about volcanoes"}))
	require.NotEmpty(t, first.SessionID)

	second := decodeChat(t, postJSON(t, server.URL+"/chat", types.ChatRequest{
		Message:   "tell me more",
		SessionID: first.SessionID,
	}))
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, "volcanoes", second.Topic.SelectedTopic)
}

func TestGetMessagesHandler(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{responses: []string{welcomeText, sectionsText}})

	created := decodeChat(t, postJSON(t, server.URL+"/chat", types.ChatRequest{Message: "tell me about volcanoes"}))

	resp, err := http.Get(server.URL + "/chat?session_id=" + created.SessionID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out types.GetMessagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	// welcome + user + toc
	assert.GreaterOrEqual(t, len(out.Messages), 3)
}

func TestGetMessagesUnknownSession(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{})

	resp, err := http.Get(server.URL + "/chat?session_id=nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSectionHandlerAdvancesProgress(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{responses: []string{welcomeText, sectionsText, "Magma chambers are underground."}})

	created := decodeChat(t, postJSON(t, server.URL+"/chat", types.ChatRequest{Message: "tell me about volcanoes"}))

	out := decodeChat(t, postJSON(t, server.URL+"/chat/section", types.SectionRequest{
		SessionID: created.SessionID,
		Section:   "Inside a volcano",
	}))
	require.True(t, out.Success)
	assert.Equal(t, 20, out.Topic.LearningProgress)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, types.MessageSection, out.Messages[0].Kind)
}

func TestBlockHandlerQuiz(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{responses: []string{welcomeText, sectionsText}})

	created := decodeChat(t, postJSON(t, server.URL+"/chat", types.ChatRequest{Message: "tell me about volcanoes"}))

	out := decodeChat(t, postJSON(t, server.URL+"/chat/block", types.BlockRequest{
		SessionID: created.SessionID,
		BlockType: config.BlockTestKnowledge,
	}))
	require.True(t, out.Success)
	require.Len(t, out.Messages, 1)
	require.NotNil(t, out.Messages[0].Quiz)
	assert.Len(t, out.Messages[0].Quiz.Options, 4)
}

func TestRelatedTopicsHandlerRequiresTopic(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{})
	handlers.Sessions.GetOrCreate("idle", types.Profile{})

	resp, err := http.Get(server.URL + "/chat/topics/related?session_id=idle")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSuggestionsHandler(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{})

	resp, err := http.Get(server.URL + "/chat/suggestions")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out types.RelatedTopicsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, chat.StarterPrompts, out.Topics)
}

func TestResetHandler(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{responses: []string{welcomeText, sectionsText, welcomeText}})

	created := decodeChat(t, postJSON(t, server.URL+"/chat", types.ChatRequest{Message: "tell me about volcanoes"}))

	out := decodeChat(t, postJSON(t, server.URL+"/chat/reset", types.ResetRequest{SessionID: created.SessionID}))
	require.True(t, out.Success)
	assert.Empty(t, out.Topic.SelectedTopic)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, types.MessageIntroduction, out.Messages[0].Kind)
}

func TestUpdateProfileLiveSession(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{responses: []string{welcomeText, sectionsText}})

	created := decodeChat(t, postJSON(t, server.URL+"/chat", types.ChatRequest{Message: "tell me about volcanoes"}))

	resp := patchJSON(t, server.URL+"/profile", types.UpdateProfileRequest{
		SessionID: created.SessionID,
		AgeRange:  "11-13",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out types.ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "11-13", out.Profile.AgeRange)

	session, ok := handlers.Sessions.Get(created.SessionID)
	require.True(t, ok)
	assert.Empty(t, session.Topic().SelectedTopic, "age change resets the topic")
}

func TestUpdateProfileStaleSessionStillApplies(t *testing.T) {
	server := newTestServer(t, &scriptedGenerator{})

	resp := patchJSON(t, server.URL+"/profile", types.UpdateProfileRequest{
		SessionID: "gone",
		Username:  "Maya",
		AgeRange:  "11-13",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out types.ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Maya", out.Profile.Username)
	assert.Equal(t, "11-13", out.Profile.AgeRange)
}
