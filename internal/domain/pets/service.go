package pets

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetPublicByID(ctx context.Context, id string) (PublicPet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PublicPet{}, ErrNotFound
	}

	p, err := s.repo.GetPublicByID(ctx, id)
	if err != nil {
		return PublicPet{}, err
	}

	// Dueño ausente => placeholders, nunca campos vacíos en la ficha pública.
	if strings.TrimSpace(p.Owner.Name) == "" {
		p.Owner.Name = OwnerPlaceholder
	}
	if strings.TrimSpace(p.Owner.Phone) == "" {
		p.Owner.Phone = OwnerPlaceholder
	}

	return p, nil
}
