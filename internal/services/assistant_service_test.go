package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshstack/site-platform/internal/config"
)

func TestSystemPromptFallback(t *testing.T) {
	assert.Equal(t, systemPrompts["product-description"], SystemPrompt("product-description"))
	assert.Equal(t, systemPrompts["marketing-text"], SystemPrompt("marketing-text"))

	// Unknown and empty types resolve to the marketing-text prompt.
	assert.Equal(t, systemPrompts["marketing-text"], SystemPrompt("no-such-type"))
	assert.Equal(t, systemPrompts["marketing-text"], SystemPrompt(""))
}

func assistantWithUpstream(t *testing.T, handler http.HandlerFunc) *AssistantService {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		OpenAIAPIKey: "test-key",
		OpenAIAPIURL: upstream.URL,
		OpenAIModel:  "gpt-3.5-turbo",
		AITimeout:    5 * time.Second,
	}
	return NewAssistantService(nil, cfg)
}

func TestGenerateSuccess(t *testing.T) {
	var captured chatRequest
	svc := assistantWithUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "  Fresh juice, bottled sunshine.  "}},
			},
		})
	})

	suggestion, err := svc.Generate("describe our green juice", "product-description", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fresh juice, bottled sunshine.", suggestion)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, systemPrompts["product-description"], captured.Messages[0].Content)
	assert.Equal(t, "describe our green juice", captured.Messages[1].Content)
	assert.Equal(t, 300, captured.MaxTokens)
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
}

func TestGenerateUpstreamError(t *testing.T) {
	svc := assistantWithUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := svc.Generate("prompt", "marketing-text", nil, nil)
	assert.ErrorIs(t, err, ErrAIUpstream)
}

func TestGenerateMalformedUpstreamBody(t *testing.T) {
	svc := assistantWithUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := svc.Generate("prompt", "marketing-text", nil, nil)
	assert.ErrorIs(t, err, ErrAIUpstream)
}

func TestGenerateEmptyChoices(t *testing.T) {
	svc := assistantWithUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := svc.Generate("prompt", "marketing-text", nil, nil)
	assert.ErrorIs(t, err, ErrAIUpstream)
}

func TestGenerateNotConfigured(t *testing.T) {
	svc := NewAssistantService(nil, &config.Config{AITimeout: time.Second})

	_, err := svc.Generate("prompt", "marketing-text", nil, nil)
	assert.ErrorIs(t, err, ErrAINotConfigured)
}
