package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshstack/site-platform/internal/config"
	"github.com/freshstack/site-platform/internal/models"
)

var (
	ErrAINotConfigured = errors.New("AI provider is not configured")
	ErrAIUpstream      = errors.New("AI provider request failed")
)

// systemPrompts maps a requested content type to the system prompt sent
// upstream. Unknown types fall back to marketing-text.
var systemPrompts = map[string]string{
	"product-description": "You are a copywriter for a premium food and beverage business. Write an appetizing, concise product description (2-3 sentences) highlighting fresh ingredients and health benefits. No emojis.",
	"hero-copy":           "You are a copywriter for a small business website. Write a short, punchy hero headline and one-sentence subtitle that conveys the brand promise. Plain text only.",
	"marketing-text":      "You are a marketing copywriter for a small business. Write clear, warm, persuasive copy for the requested purpose. Keep it under 80 words. No emojis.",
	"seasonal-promo":      "You are a marketing copywriter. Write a short seasonal promotion announcement (2-3 sentences) that creates urgency without sounding pushy.",
	"business-copy":       "You are a brand copywriter. Write an 'about us' style paragraph for a small business, friendly and trustworthy in tone, under 100 words.",
	"feature-benefit":     "You are a conversion copywriter. Write a one-line feature title and a one-sentence benefit statement for a business website feature card.",
}

const fallbackPromptType = "marketing-text"

type AssistantService struct {
	db     *gorm.DB
	cfg    *config.Config
	client *http.Client
}

func NewAssistantService(db *gorm.DB, cfg *config.Config) *AssistantService {
	return &AssistantService{
		db:  db,
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.AITimeout,
		},
	}
}

// SystemPrompt resolves the system prompt for a content type.
func SystemPrompt(contentType string) string {
	if p, ok := systemPrompts[contentType]; ok {
		return p
	}
	return systemPrompts[fallbackPromptType]
}

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	MaxTokens        int           `json:"max_tokens"`
	Temperature      float64       `json:"temperature"`
	PresencePenalty  float64       `json:"presence_penalty"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate proxies a copywriting prompt to the chat-completions upstream and
// records the exchange. The generation row is best effort; a logging failure
// never costs the caller their suggestion.
func (s *AssistantService) Generate(prompt, contentType string, clientID, userID *uuid.UUID) (string, error) {
	if !s.cfg.AIConfigured() {
		return "", ErrAINotConfigured
	}

	payload := chatRequest{
		Model: s.cfg.OpenAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt(contentType)},
			{Role: "user", Content: prompt},
		},
		MaxTokens:        300,
		Temperature:      0.7,
		PresencePenalty:  0.1,
		FrequencyPenalty: 0.1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.OpenAIAPIURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenAIAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("AI upstream returned error", "status", resp.StatusCode)
		return "", ErrAIUpstream
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUpstream, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil || len(parsed.Choices) == 0 {
		return "", ErrAIUpstream
	}

	suggestion := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if suggestion == "" {
		return "", ErrAIUpstream
	}

	if s.db != nil {
		record := models.Generation{
			ID:          uuid.New(),
			ClientID:    clientID,
			UserID:      userID,
			Prompt:      prompt,
			ContentType: contentType,
			Response:    suggestion,
		}
		if err := s.db.Create(&record).Error; err != nil {
			slog.Error("failed to record AI generation", "error", err)
		}
	}

	return suggestion, nil
}
