package llm

import "context"

// Engine is a text-completion backend. Implementations are built once at
// startup and must be safe for concurrent use.
type Engine interface {
	Name() string
	GetModel() string
	Generate(ctx context.Context, prompt string) (string, error)
}
