package anthropic

import (
	"bestbefore-backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Client is a thin wrapper over the Anthropic messages API, shared by the
// storage-advice fallback, produce detection and grocery ingredient
// generation. Every caller treats a failure as non-fatal and degrades to a
// default.

const (
	defaultBaseURL = "https://api.anthropic.com/v1/messages"
	apiVersion     = "2023-06-01"
	defaultModel   = "claude-3-haiku-20240307"
)

var ErrNotConfigured = errors.New("anthropic API key not configured")

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

type (
	Client struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}

	contentPart struct {
		Type   string       `json:"type"`
		Text   string       `json:"text,omitempty"`
		Source *imageSource `json:"source,omitempty"`
	}

	imageSource struct {
		Type      string `json:"type"`
		MediaType string `json:"media_type"`
		Data      string `json:"data"`
	}

	message struct {
		Role    string        `json:"role"`
		Content []contentPart `json:"content"`
	}

	request struct {
		Model     string    `json:"model"`
		MaxTokens int       `json:"max_tokens"`
		Messages  []message `json:"messages"`
	}

	response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
)

func NewClient() *Client {
	model := utils.GetConfig("CLAUDE_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:     utils.GetConfig("CLAUDE_API_KEY"),
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWith builds a client against an explicit endpoint, used by tests.
func NewClientWith(apiKey, model, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{apiKey: apiKey, model: model, baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// CompleteText sends a single text prompt and returns the first text block
// of the model's reply.
func (c *Client) CompleteText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return c.complete(ctx, maxTokens, []contentPart{{Type: "text", Text: prompt}})
}

// CompleteWithImage sends a text prompt plus one base64 encoded image.
func (c *Client) CompleteWithImage(ctx context.Context, prompt, mediaType, base64Data string, maxTokens int) (string, error) {
	return c.complete(ctx, maxTokens, []contentPart{
		{Type: "text", Text: prompt},
		{Type: "image", Source: &imageSource{Type: "base64", MediaType: mediaType, Data: base64Data}},
	})
}

func (c *Client) complete(ctx context.Context, maxTokens int, parts []contentPart) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(request{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: parts}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("anthropic API error: %s - %s", resp.Status, string(respBody))
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}

	for _, block := range decoded.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("anthropic response contained no text block")
}

// ExtractJSON pulls the first JSON object out of a model reply, tolerating
// markdown fences and surrounding prose.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	if match := jsonPattern.FindString(text); match != "" {
		return match
	}
	return ""
}
