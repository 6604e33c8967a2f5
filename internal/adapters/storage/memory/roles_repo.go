package memory

import (
	"context"
	"sort"
	"sync"

	"petvizor/internal/domain/roles"
)

type RolesRepo struct {
	mu    sync.RWMutex
	items []roles.Role
}

func NewRolesRepo() *RolesRepo {
	return &RolesRepo{}
}

func (r *RolesRepo) Seed(role roles.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, role)
}

func (r *RolesRepo) List(ctx context.Context) ([]roles.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roles.Role, len(r.items))
	copy(out, r.items)

	// mismo orden que la consulta real (por id asc)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
