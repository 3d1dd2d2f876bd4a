package assistant

import (
	"context"
)

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message in a chat history.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// GenerateRequest carries everything the model needs for one reply.
type GenerateRequest struct {
	System  string
	History []Turn
	Prompt  string
}

// TextGenerator produces one reply per call. The Gemini client implements
// it; tests substitute a stub.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Close() error
}
