package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noah-isme/campus-concierge-api/internal/tools"
)

// Defaults for the OpenAI compatible providers.
const (
	GroqBaseURL        = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.1-8b-instant"
	OpenAIBaseURL      = "https://api.openai.com/v1"
	DefaultOpenAIModel = "gpt-4o-mini"
)

type openAIMessage struct {
	Role       string           `json:"role"`
	Content    *string          `json:"content"`
	ToolCalls  []openAIToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

// text returns the message content; tool-call-only assistant turns carry a null content.
func (m openAIMessage) text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

type openAIToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type openAITool struct {
	Type     string         `json:"type"`
	Function openAIFunction `json:"function"`
}

type openAIFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Tools       []openAITool    `json:"tools,omitempty"`
	ToolChoice  string          `json:"tool_choice,omitempty"`
	Temperature float64         `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type openAIBackend struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func newOpenAIBackend(baseURL, apiKey, model string, timeout time.Duration) *openAIBackend {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &openAIBackend{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

func (b *openAIBackend) Open(systemPrompt, message string, available []*tools.Tool) conversation {
	defs := make([]openAITool, 0, len(available))
	for _, tool := range available {
		defs = append(defs, openAITool{
			Type: "function",
			Function: openAIFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Schema(),
			},
		})
	}
	return &openAIConversation{
		backend: b,
		tools:   defs,
		messages: []openAIMessage{
			{Role: "system", Content: &systemPrompt},
			{Role: "user", Content: &message},
		},
	}
}

type openAIConversation struct {
	backend  *openAIBackend
	tools    []openAITool
	messages []openAIMessage
}

func (c *openAIConversation) Next(ctx context.Context) (reply, error) {
	resp, err := c.backend.complete(ctx, openAIRequest{
		Model:       c.backend.model,
		Messages:    c.messages,
		Tools:       c.tools,
		ToolChoice:  "auto",
		Temperature: 0.2,
	})
	if err != nil {
		return reply{}, err
	}
	if len(resp.Choices) == 0 {
		return reply{}, fmt.Errorf("chat completion returned no choices")
	}
	msg := resp.Choices[0].Message
	msg.Role = "assistant"
	if len(msg.ToolCalls) > 0 && msg.text() == "" {
		msg.Content = nil
	}
	c.messages = append(c.messages, msg)

	out := reply{}
	for _, tc := range msg.ToolCalls {
		if tc.Type != "" && tc.Type != "function" {
			continue
		}
		call := toolCall{ID: tc.ID, Name: tc.Function.Name}
		if raw := strings.TrimSpace(tc.Function.Arguments); raw != "" {
			var args map[string]any
			if err := json.Unmarshal([]byte(raw), &args); err != nil {
				call.Err = fmt.Errorf("failed to unmarshal arguments for tool %s: %w", tc.Function.Name, err)
			}
			call.Args = args
		}
		out.Calls = append(out.Calls, call)
	}
	if len(out.Calls) == 0 {
		out.Text = msg.text()
	}
	return out, nil
}

func (c *openAIConversation) Answer(outcomes []toolOutcome) {
	for _, o := range outcomes {
		payload, err := json.Marshal(o.Response)
		if err != nil {
			payload = []byte(fmt.Sprintf(`{"error":%q}`, err.Error()))
		}
		content := string(payload)
		c.messages = append(c.messages, openAIMessage{
			Role:       "tool",
			Content:    &content,
			ToolCallID: o.Call.ID,
		})
	}
}

func (b *openAIBackend) complete(ctx context.Context, reqBody openAIRequest) (*openAIResponse, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out openAIResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("API error: %s", out.Error.Message)
	}
	return &out, nil
}
