package resolver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-concierge-api/internal/tools"
	"github.com/noah-isme/campus-concierge-api/pkg/config"
)

func TestOpenAIBackendToolLoop(t *testing.T) {
	var requests int32
	var secondRequest openAIRequest
	var secondRaw []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req openAIRequest
		require.NoError(t, json.Unmarshal(raw, &req))
		w.Header().Set("Content-Type", "application/json")

		if atomic.AddInt32(&requests, 1) == 1 {
			assert.Equal(t, "llama-3.1-8b-instant", req.Model)
			assert.Equal(t, "system", req.Messages[0].Role)
			require.Len(t, req.Tools, 1)
			assert.Equal(t, tools.ListExams, req.Tools[0].Function.Name)
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":null,"tool_calls":[
				{"id":"call_1","type":"function","function":{"name":"list_exams","arguments":"{\"department\":\"CSE\",\"semester\":\"3\"}"}}]}}]}`))
			return
		}

		secondRequest = req
		secondRaw = raw
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"You have one exam coming up."}}]}`))
	}))
	defer srv.Close()

	var gotArgs tools.Args
	reg := tools.NewRegistry()
	reg.MustRegister(&tools.Tool{
		Name:        tools.ListExams,
		Description: "Retrieve exam schedules",
		Parameters:  []tools.Parameter{{Name: "department", Type: tools.TypeString}},
		Execute: func(ctx context.Context, args tools.Args) (any, error) {
			gotArgs = args
			return []map[string]any{{"exam_name": "Mid-Semester", "department": "CSE"}}, nil
		},
	})

	r, err := New(context.Background(), config.ResolverConfig{Provider: config.ProviderGroq, APIKey: "test-key", BaseURL: srv.URL}, reg, Options{})
	require.NoError(t, err)
	defer r.(*Agent).backend.(*openAIBackend).httpClient.CloseIdleConnections()

	res, err := r.Resolve(context.Background(), "Any CSE exams?")
	require.NoError(t, err)
	assert.Equal(t, StructuredResult{
		Message: "You have one exam coming up.",
		Data:    []map[string]any{{"exam_name": "Mid-Semester", "department": "CSE"}},
	}, res)
	assert.Equal(t, tools.Args{"department": "CSE", "semester": "3"}, gotArgs)

	require.Len(t, secondRequest.Messages, 4)
	toolMsg := secondRequest.Messages[3]
	assert.Equal(t, "tool", toolMsg.Role)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)
	require.NotNil(t, toolMsg.Content)
	assert.JSONEq(t, `{"result":[{"department":"CSE","exam_name":"Mid-Semester"}]}`, *toolMsg.Content)

	var wire struct {
		Messages []map[string]json.RawMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(secondRaw, &wire))
	assistant := wire.Messages[2]
	require.Contains(t, assistant, "content")
	assert.Equal(t, "null", string(assistant["content"]))
	assert.Contains(t, string(assistant["tool_calls"]), "call_1")
}

func TestOpenAIBackendHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	r, err := New(context.Background(), config.ResolverConfig{Provider: config.ProviderOpenAI, APIKey: "bad", BaseURL: srv.URL}, tools.NewRegistry(), Options{})
	require.NoError(t, err)
	defer r.(*Agent).backend.(*openAIBackend).httpClient.CloseIdleConnections()

	_, err = r.Resolve(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
