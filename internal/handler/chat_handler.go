package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/internal/service"
	"github.com/noah-isme/campus-concierge-api/internal/tools"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
	"github.com/noah-isme/campus-concierge-api/pkg/response"
)

type chatService interface {
	Ask(ctx context.Context, message string) (models.ChatResponse, error)
	Health() service.ChatHealth
	Tools() []*tools.Tool
}

// ChatHandler exposes the natural-language chat endpoint.
type ChatHandler struct {
	service chatService
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(svc chatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// Chat godoc
// @Summary Ask the campus concierge
// @Description Resolve a free-text question about events, exams or placements. Answers are returned without the envelope.
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "message is required"))
		return
	}

	res, err := h.service.Ask(c.Request.Context(), req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Health godoc
// @Summary Chat health
// @Tags Chat
// @Produce json
// @Success 200 {object} service.ChatHealth
// @Router /chat/health [get]
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Health())
}

// Tools godoc
// @Summary List resolver tools
// @Tags Chat
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /chat/tools [get]
func (h *ChatHandler) Tools(c *gin.Context) {
	list := h.service.Tools()
	response.JSON(c, http.StatusOK, list, map[string]interface{}{"count": len(list)})
}
