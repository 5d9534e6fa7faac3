package service

import (
	"errors"
	"strings"
)

// ErrAIProvider wraps any failure from the chat-completion API. The upstream
// error is surfaced unmodified to the caller; there is no retry or fallback.
var ErrAIProvider = errors.New("ai provider request failed")

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
