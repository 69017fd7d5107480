package resolver

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/noah-isme/campus-concierge-api/internal/tools"
)

// DefaultGeminiModel is used when no model is configured for the gemini provider.
const DefaultGeminiModel = "gemini-2.0-flash"

type geminiBackend struct {
	client *genai.Client
	model  string
}

func newGeminiBackend(ctx context.Context, apiKey, model string) (*geminiBackend, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &geminiBackend{client: client, model: model}, nil
}

func (b *geminiBackend) Open(systemPrompt, message string, available []*tools.Tool) conversation {
	declarations := make([]*genai.FunctionDeclaration, 0, len(available))
	for _, tool := range available {
		declarations = append(declarations, geminiDeclaration(tool))
	}
	temperature := float32(0.2)
	return &geminiConversation{
		backend: b,
		config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Tools:             []*genai.Tool{{FunctionDeclarations: declarations}},
			Temperature:       &temperature,
		},
		history: []*genai.Content{genai.NewContentFromText(message, genai.RoleUser)},
	}
}

type geminiConversation struct {
	backend *geminiBackend
	config  *genai.GenerateContentConfig
	history []*genai.Content
}

func (c *geminiConversation) Next(ctx context.Context) (reply, error) {
	resp, err := c.backend.client.Models.GenerateContent(ctx, c.backend.model, c.history, c.config)
	if err != nil {
		return reply{}, fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return reply{}, errors.New("gemini returned no candidates")
	}
	c.history = append(c.history, resp.Candidates[0].Content)

	out := reply{}
	for _, fc := range resp.FunctionCalls() {
		out.Calls = append(out.Calls, toolCall{ID: fc.ID, Name: fc.Name, Args: tools.Args(fc.Args)})
	}
	if len(out.Calls) == 0 {
		out.Text = resp.Text()
	}
	return out, nil
}

func (c *geminiConversation) Answer(outcomes []toolOutcome) {
	parts := make([]*genai.Part, 0, len(outcomes))
	for _, o := range outcomes {
		parts = append(parts, &genai.Part{FunctionResponse: &genai.FunctionResponse{
			ID:       o.Call.ID,
			Name:     o.Call.Name,
			Response: o.Response,
		}})
	}
	c.history = append(c.history, genai.NewContentFromParts(parts, genai.RoleUser))
}

func geminiDeclaration(tool *tools.Tool) *genai.FunctionDeclaration {
	decl := &genai.FunctionDeclaration{
		Name:        tool.Name,
		Description: tool.Description,
	}
	if len(tool.Parameters) == 0 {
		return decl
	}

	props := make(map[string]*genai.Schema, len(tool.Parameters))
	for _, p := range tool.Parameters {
		schema := &genai.Schema{
			Type:        genai.TypeString,
			Description: p.Description,
			Enum:        p.Enum,
		}
		if p.Type == tools.TypeInteger {
			schema.Type = genai.TypeInteger
		}
		if p.Minimum != nil {
			schema.Minimum = genai.Ptr(float64(*p.Minimum))
		}
		if p.Maximum != nil {
			schema.Maximum = genai.Ptr(float64(*p.Maximum))
		}
		props[p.Name] = schema
	}
	decl.Parameters = &genai.Schema{Type: genai.TypeObject, Properties: props}
	return decl
}
