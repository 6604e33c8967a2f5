package chat

import (
	"context"
	"strings"
	"time"

	"petvizor/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	completer Completer
	log       LogRepository
	lg        logger.Logger
	now       func() time.Time
}

func NewService(completer Completer, log LogRepository, lg logger.Logger) *Service {
	if lg == nil {
		lg = logger.Nop()
	}
	return &Service{
		completer: completer,
		log:       log,
		lg:        lg,
		now:       time.Now,
	}
}

// Reply genera la respuesta y deja el intercambio en el log append-only.
// El guardado es best-effort: si falla, se loguea y el request sigue OK.
func (s *Service) Reply(ctx context.Context, userID, message string) (Exchange, string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Exchange{}, "", ErrEmptyMessage
	}
	if s.completer == nil {
		return Exchange{}, "", ErrNotConfigured
	}

	completion, err := s.completer.Complete(ctx, message)
	if err != nil {
		return Exchange{}, "", err
	}

	ex := Exchange{
		ID:        uuid.NewString(),
		UserID:    strings.TrimSpace(userID),
		Message:   message,
		Response:  completion.Text,
		CreatedAt: s.now(),
	}

	if s.log != nil {
		if err := s.log.Append(ctx, ex); err != nil {
			s.lg.Warn("chat log append failed", map[string]any{"error": err.Error()})
		}
	}

	return ex, completion.Model, nil
}
