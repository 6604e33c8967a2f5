package memory

import (
	"context"
	"sync"

	"petvizor/internal/domain/chat"
)

type ChatLogRepo struct {
	mu    sync.RWMutex
	items []chat.Exchange
}

func NewChatLogRepo() *ChatLogRepo {
	return &ChatLogRepo{}
}

func (r *ChatLogRepo) Append(ctx context.Context, ex chat.Exchange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, ex)
	return nil
}

// Exchanges devuelve una copia del log (para asserts en tests).
func (r *ChatLogRepo) Exchanges() []chat.Exchange {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]chat.Exchange, len(r.items))
	copy(out, r.items)
	return out
}
