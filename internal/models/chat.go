package models

// ChatRequest is a single user turn.
type ChatRequest struct {
	Message string `json:"message" binding:"required" validate:"required"`
}

// ChatResponse is the fixed shape every chat turn resolves to.
type ChatResponse struct {
	Message string           `json:"message"`
	Data    []map[string]any `json:"data"`
}
