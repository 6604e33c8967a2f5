package memory

import (
	"context"
	"sync"

	"petvizor/internal/domain/profiles"
)

// ProfilesRepo es un store en memoria para modo dev y tests.
type ProfilesRepo struct {
	mu   sync.RWMutex
	byID map[string]profiles.Profile
}

func NewProfilesRepo() *ProfilesRepo {
	return &ProfilesRepo{
		byID: make(map[string]profiles.Profile),
	}
}

func (r *ProfilesRepo) Seed(p profiles.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return p, nil
}
