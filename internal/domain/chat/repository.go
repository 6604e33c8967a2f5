package chat

import (
	"context"
	"errors"
)

var (
	ErrEmptyMessage = errors.New("message is empty")

	// ErrNotConfigured: falta la credencial del servicio de completion.
	ErrNotConfigured = errors.New("completion service not configured")

	// ErrEmptyReply: el upstream respondió 2xx pero sin contenido utilizable.
	ErrEmptyReply = errors.New("empty completion")
)

// Completer genera una respuesta para el texto del usuario.
type Completer interface {
	Complete(ctx context.Context, userText string) (Completion, error)
}

// LogRepository persiste el intercambio (best-effort).
type LogRepository interface {
	Append(ctx context.Context, ex Exchange) error
}
