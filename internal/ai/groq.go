package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "llama-3.3-70b-versatile"
)

// GroqClient calls the Groq chat-completions API with a forced JSON
// response format and parses the returned mix plan.
type GroqClient struct {
	BaseURL string

	apiKey string
	model  string
	http   *http.Client
	logger *log.Logger
}

func NewGroqClient(apiKey, model string, logger *log.Logger) *GroqClient {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = log.Default()
	}
	return &GroqClient{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (c *GroqClient) GenerateMixPlan(ctx context.Context, genReq GenerationRequest) (MixPlan, error) {
	payload := map[string]any{
		"model": c.model,
		"messages": []map[string]any{
			{"role": "user", "content": buildPrompt(genReq)},
		},
		"response_format": map[string]string{"type": "json_object"},
	}
	buf, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(buf))
	if err != nil {
		return MixPlan{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("requesting mix plan", "model", c.model, "count", genReq.TrackCount)

	resp, err := c.http.Do(req)
	if err != nil {
		return MixPlan{}, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return MixPlan{}, fmt.Errorf("groq api error: %d - %s", resp.StatusCode, string(body))
	}

	var data struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return MixPlan{}, err
	}
	text := ""
	if len(data.Choices) > 0 {
		text = data.Choices[0].Message.Content
	}
	return ParseMixPlan(text)
}
