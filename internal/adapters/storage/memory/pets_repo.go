package memory

import (
	"context"
	"sync"

	"petvizor/internal/domain/pets"
)

type PetsRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.PublicPet
}

func NewPetsRepo() *PetsRepo {
	return &PetsRepo{
		byID: make(map[string]pets.PublicPet),
	}
}

func (r *PetsRepo) Seed(p pets.PublicPet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
}

func (r *PetsRepo) GetPublicByID(ctx context.Context, id string) (pets.PublicPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.PublicPet{}, pets.ErrNotFound
	}
	return p, nil
}
