// Package llm provides the chat-completion client used to turn meeting
// transcripts into minutes-of-meeting text.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/momsync/momsync/internal/config"
)

// systemPrompt instructs the model to produce the action-item format the
// extraction grammar in internal/minutes understands. Changing one side of
// this contract requires changing the other.
const systemPrompt = "You will be given a meeting transcript under the '##transcript'. " +
	"Extract all project-related action items and assign them to the respective persons."

// GenerationError wraps any failure to produce minutes text: transport
// errors, non-2xx provider responses, and empty completions all collapse
// into this one kind. No distinction is made between transient and
// permanent provider failures.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate minutes: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Client calls an OpenAI-compatible chat-completion endpoint.
type Client struct {
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a chat-completion client from the LLM configuration.
// The API key is carried by an oauth2 static token source so every request
// is bearer-authenticated without the key leaking into request construction.
func NewClient(cfg config.LLMConfig) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.APIKey},
	)
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = cfg.Timeout
	if httpClient.Timeout == 0 {
		httpClient.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient:  httpClient,
	}
}

// GenerateMinutes sends the transcript to the provider and returns the
// generated minutes text. A single call, no retries: the caller aborts the
// whole run when this fails.
func (c *Client) GenerateMinutes(ctx context.Context, transcript string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: transcript},
		},
		Temperature: c.temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GenerationError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &GenerationError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenerationError{Err: fmt.Errorf("chat completion request failed: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GenerationError{Err: fmt.Errorf("provider returned status %d: %s", resp.StatusCode, respBody)}
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", &GenerationError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", &GenerationError{Err: fmt.Errorf("no content returned from provider")}
	}

	return completion.Choices[0].Message.Content, nil
}
