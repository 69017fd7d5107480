package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromOutputMapping(t *testing.T) {
	res := FromOutput(map[string]any{
		"message": "Found 1 event",
		"data":    []any{map[string]any{"title": "AI Workshop"}, "stray"},
	})

	assert.Equal(t, StructuredResult{
		Message: "Found 1 event",
		Data:    []map[string]any{{"title": "AI Workshop"}},
	}, res)
}

func TestFromOutputDefaults(t *testing.T) {
	assert.Equal(t, StructuredResult{}, FromOutput(map[string]any{}))
	assert.Equal(t, StructuredResult{Message: "42"}, FromOutput(map[string]any{"message": 42, "data": "oops"}))
	assert.Equal(t,
		StructuredResult{Data: []map[string]any{{"company": "Google"}}},
		FromOutput(map[string]any{"data": map[string]any{"company": "Google"}}),
	)
}

func TestFromOutputJSONText(t *testing.T) {
	res := FromOutput("```json\n{\"message\": \"No data found\", \"data\": []}\n```")
	assert.Equal(t, StructuredResult{Message: "No data found", Data: []map[string]any{}}, res)

	res = FromOutput(`{"message":"hi"}`)
	assert.Equal(t, StructuredResult{Message: "hi"}, res)
}

func TestFromOutputOpaque(t *testing.T) {
	assert.Equal(t, OpaqueResult{Value: "Hello there"}, FromOutput("Hello there"))
	assert.Equal(t, OpaqueResult{Value: 7}, FromOutput(7))
	assert.Equal(t, OpaqueResult{Value: "[1,2]"}, FromOutput("[1,2]"))
	assert.Equal(t, OpaqueResult{Value: "{not json"}, FromOutput("{not json"))
}

func TestNormalize(t *testing.T) {
	resp := Normalize(StructuredResult{Message: "ok", Data: []map[string]any{{"id": 1}}}, nil)
	assert.Equal(t, "ok", resp.Message)
	assert.Len(t, resp.Data, 1)

	resp = Normalize(OpaqueResult{Value: 3.5}, nil)
	assert.Equal(t, "3.5", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestNormalizeApologisesOnError(t *testing.T) {
	resp := Normalize(nil, errors.New("could not understand \"asdf123\""))
	assert.Equal(t, "I apologize, but I encountered an error: could not understand \"asdf123\"", resp.Message)
	assert.Nil(t, resp.Data)
}
