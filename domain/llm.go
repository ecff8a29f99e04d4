package domain

import "context"

// Llm abstracts the generative-language provider the relay forwards to.
type Llm interface {
	// Generate sends the ordered contents upstream using apiKey as the
	// credential and returns the concatenated reply text.
	Generate(ctx context.Context, apiKey string, contents []ChatMessage) (string, error)
}

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	UserRole  Role = "user"
	ModelRole Role = "model"
)
