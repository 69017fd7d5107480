package tools

import "errors"

// Registry errors.
var (
	ErrToolNotFound          = errors.New("tool not found")
	ErrToolNameEmpty         = errors.New("tool name cannot be empty")
	ErrToolExecuteNil        = errors.New("tool execute function cannot be nil")
	ErrToolAlreadyRegistered = errors.New("tool already registered")
	ErrInvalidArguments      = errors.New("invalid tool arguments")
)
