package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aijobradar/internal/config"
	"aijobradar/internal/metrics"
	"aijobradar/internal/model"
)

// ChatMessage is one turn of the coach conversation
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// CoachService proxies career-coach chat to the Gemini API. Falls back to a
// canned reply when no API key is configured or the call fails, so the
// premium surface never hard-errors on upstream trouble.
type CoachService struct {
	config *config.AIConfig
	client *http.Client
}

// NewCoachService creates a new coach service
func NewCoachService() *CoachService {
	cfg := config.DefaultAIConfig()
	return &CoachService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Chat generates a coach reply for the user's message given the
// conversation so far
func (s *CoachService) Chat(ctx context.Context, user *model.User, message string, history []ChatMessage) (string, error) {
	if !s.config.IsEnabled() {
		metrics.CoachRequests.WithLabelValues("mock").Inc()
		return s.mockReply(user), nil
	}

	prompt := s.buildCoachPrompt(user, message, history)
	reply, err := s.callGemini(ctx, prompt)
	if err != nil {
		metrics.CoachRequests.WithLabelValues("fallback").Inc()
		return s.mockReply(user), nil
	}

	metrics.CoachRequests.WithLabelValues("ok").Inc()
	return reply, nil
}

// callGemini makes a request to the Gemini API
func (s *CoachService) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (s *CoachService) buildCoachPrompt(user *model.User, message string, history []ChatMessage) string {
	jobTitle := user.JobTitle
	if jobTitle == "" {
		jobTitle = "Not specified"
	}
	industry := user.Industry
	if industry == "" {
		industry = "Not specified"
	}

	var sb strings.Builder
	sb.WriteString("You are an expert AI Career Coach helping a user future-proof their career against automation.\n")
	fmt.Fprintf(&sb, "User Profile:\n- Job Title: %s\n- Industry: %s\n", jobTitle, industry)
	if len(user.Skills) > 0 {
		fmt.Fprintf(&sb, "- Skills: %s\n", strings.Join(user.Skills, ", "))
	}

	if len(history) > 0 {
		sb.WriteString("\nConversation so far:\n")
		for _, msg := range history {
			role := "User"
			if msg.Role == "assistant" {
				role = "Coach"
			}
			fmt.Fprintf(&sb, "%s: %s\n", role, msg.Content)
		}
	}

	fmt.Fprintf(&sb, "\nUser: %s\n\nReply as the coach. Keep it practical, specific, and under 300 words.", message)
	return sb.String()
}

func (s *CoachService) mockReply(user *model.User) string {
	role := user.JobTitle
	if role == "" {
		role = "your role"
	}
	return fmt.Sprintf("As %s, your best defense against automation is pairing your domain experience with AI tooling: learn to direct AI on the routine parts of your work and double down on the judgment calls only you can make. Pick one AI tool relevant to your daily tasks and use it for a week.", role)
}
