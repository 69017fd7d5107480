// Package resolver turns a free-text campus question into a {message, data} answer
// by letting a language model call the campus tools.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

// Resolver answers one chat turn.
type Resolver interface {
	Resolve(ctx context.Context, message string) (Result, error)
}

// Result is either a StructuredResult or an OpaqueResult.
type Result interface {
	isResult()
}

// StructuredResult carries an answer already shaped as message plus records.
type StructuredResult struct {
	Message string
	Data    []map[string]any
}

// OpaqueResult carries any other output; it is rendered as text.
type OpaqueResult struct {
	Value any
}

func (StructuredResult) isResult() {}
func (OpaqueResult) isResult()     {}

// ApologyPrefix starts every failed chat answer.
const ApologyPrefix = "I apologize, but I encountered an error: "

// FromOutput classifies loosely typed resolver output.
func FromOutput(raw any) Result {
	switch v := raw.(type) {
	case Result:
		return v
	case map[string]any:
		return structuredFromMap(v)
	case string:
		if obj, ok := decodeObject(v); ok {
			return structuredFromMap(obj)
		}
	case []byte:
		if obj, ok := decodeObject(string(v)); ok {
			return structuredFromMap(obj)
		}
	}
	return OpaqueResult{Value: raw}
}

// Normalize renders a resolver outcome as the chat response. It never fails.
func Normalize(res Result, err error) models.ChatResponse {
	if err != nil {
		return models.ChatResponse{Message: ApologyPrefix + err.Error()}
	}
	switch r := res.(type) {
	case StructuredResult:
		return models.ChatResponse{Message: r.Message, Data: r.Data}
	case *StructuredResult:
		if r != nil {
			return models.ChatResponse{Message: r.Message, Data: r.Data}
		}
	case OpaqueResult:
		return models.ChatResponse{Message: fmt.Sprint(r.Value)}
	case *OpaqueResult:
		if r != nil {
			return models.ChatResponse{Message: fmt.Sprint(r.Value)}
		}
	}
	return models.ChatResponse{}
}

func structuredFromMap(obj map[string]any) StructuredResult {
	out := StructuredResult{}
	switch msg := obj["message"].(type) {
	case nil:
	case string:
		out.Message = msg
	default:
		out.Message = fmt.Sprint(msg)
	}

	switch data := obj["data"].(type) {
	case []map[string]any:
		out.Data = data
	case []any:
		records := make([]map[string]any, 0, len(data))
		for _, item := range data {
			if record, ok := item.(map[string]any); ok {
				records = append(records, record)
			}
		}
		out.Data = records
	case map[string]any:
		out.Data = []map[string]any{data}
	}
	return out
}

// decodeObject parses text as a JSON object, tolerating a surrounding markdown code fence.
func decodeObject(text string) (map[string]any, bool) {
	text = stripCodeFence(strings.TrimSpace(text))
	if !strings.HasPrefix(text, "{") {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
