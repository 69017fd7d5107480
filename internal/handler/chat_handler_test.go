package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/internal/tools"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
)

func newChatRouter(stub *chatServiceStub) http.Handler {
	h := NewChatHandler(stub)
	r := newTestRouter()
	r.POST("/chat", h.Chat)
	r.GET("/chat/health", h.Health)
	r.GET("/chat/tools", h.Tools)
	return r
}

func TestChatHandlerReturnsBareResponse(t *testing.T) {
	stub := &chatServiceStub{resp: models.ChatResponse{
		Message: "Here are the technical events.",
		Data:    []map[string]any{{"title": "Hackathon"}},
	}}
	w := perform(newChatRouter(stub), http.MethodPost, "/chat", `{"message":"technical events this week"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "technical events this week", stub.received)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Here are the technical events.", body["message"])
	assert.Len(t, body["data"], 1)
	assert.NotContains(t, body, "meta")
}

func TestChatHandlerRejectsMissingMessage(t *testing.T) {
	stub := &chatServiceStub{}
	w := perform(newChatRouter(stub), http.MethodPost, "/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message is required")
	assert.Empty(t, stub.received)
}

func TestChatHandlerResolverFailure(t *testing.T) {
	stub := &chatServiceStub{err: appErrors.Wrap(errors.New("no key"), appErrors.ErrResolverUnavailable.Code, appErrors.ErrResolverUnavailable.Status, "Failed to initialize AI agent: no key")}
	w := perform(newChatRouter(stub), http.MethodPost, "/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to initialize AI agent")
}

func TestChatHandlerHealthAndTools(t *testing.T) {
	stub := &chatServiceStub{tools: []*tools.Tool{{Name: tools.ListEvents}, {Name: tools.ListExams}}}
	r := newChatRouter(stub)

	w := perform(r, http.MethodGet, "/chat/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	w = perform(r, http.MethodGet, "/chat/tools", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tools.ListEvents)
	assert.Contains(t, w.Body.String(), `"count":2`)
}
