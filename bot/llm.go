package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ChatMessage is one entry of the completion request in API vocabulary
// ("system", "user", "assistant").
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the POST body of the completions endpoint.
type ChatCompletionRequest struct {
	Model            string        `json:"model"`
	Messages         []ChatMessage `json:"messages"`
	Temperature      float64       `json:"temperature,omitempty"`
	MaxTokens        int           `json:"max_tokens,omitempty"`
	PresencePenalty  float64       `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64       `json:"frequency_penalty,omitempty"`
}

// ChatCompletionChoice is one completion variant returned by the API.
type ChatCompletionChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatCompletionResponse is the completions endpoint reply.
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   map[string]int         `json:"usage"`
}

// CompletionClient is the outbound boundary of the adapter. Satisfied by
// ModelClient in production and by test doubles.
type CompletionClient interface {
	// Configured reports whether a credential is present; without one the
	// pipeline runs rule-based only.
	Configured() bool
	ChatCompletion(ctx context.Context, req ChatCompletionRequest) (string, error)
}

// ModelClient talks to an OpenAI-compatible chat-completions API.
type ModelClient struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

// NewModelClient builds a client from the environment: OPENAI_API_URL
// (default https://api.openai.com/v1), OPENAI_API_KEY, OPENAI_MODEL
// (default gpt-3.5-turbo) and OPENAI_API_TIMEOUT (default 30s).
func NewModelClient() *ModelClient {
	apiURL := os.Getenv("OPENAI_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	timeout := 30 * time.Second
	if t := os.Getenv("OPENAI_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &ModelClient{
		apiURL: apiURL,
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key was provided.
func (c *ModelClient) Configured() bool {
	return c.apiKey != ""
}

// ChatCompletion submits req and returns the text of the first choice.
func (c *ModelClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (string, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.apiURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
