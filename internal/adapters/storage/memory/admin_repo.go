package memory

import (
	"context"
	"errors"
	"sync"

	"petvizor/internal/domain/admin"
)

// AdminRepo permite simular el RPC y la consulta directa por separado,
// para ejercitar el strategy chain en tests.
type AdminRepo struct {
	mu      sync.RWMutex
	byEmail map[string]admin.User
	rpcDown bool
}

func NewAdminRepo() *AdminRepo {
	return &AdminRepo{
		byEmail: make(map[string]admin.User),
	}
}

func (r *AdminRepo) Seed(u admin.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEmail[u.Email] = u
}

// SetRPCDown fuerza el fallo del camino RPC.
func (r *AdminRepo) SetRPCDown(down bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rpcDown = down
}

func (r *AdminRepo) ByRPC(ctx context.Context, email string) (admin.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.rpcDown {
		return admin.User{}, errors.New("rpc unavailable")
	}
	u, ok := r.byEmail[email]
	if !ok {
		return admin.User{}, admin.ErrNotFound
	}
	return u, nil
}

func (r *AdminRepo) ByEmail(ctx context.Context, email string) (admin.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return admin.User{}, admin.ErrNotFound
	}
	return u, nil
}
