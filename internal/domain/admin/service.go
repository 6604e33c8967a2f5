package admin

import (
	"context"
	"strings"
)

// Strategy es un paso del lookup. Las estrategias se prueban en orden
// hasta que una responda; el resultado queda etiquetado con cuál ganó.
type Strategy struct {
	Name   string
	Lookup func(ctx context.Context, email string) (User, error)
}

// Result es el admin encontrado más la estrategia que lo resolvió.
type Result struct {
	User User
	Via  string
}

type Service struct {
	email string
	repo  Repository
}

func NewService(repo Repository, adminEmail string) *Service {
	adminEmail = strings.TrimSpace(adminEmail)
	if adminEmail == "" {
		adminEmail = DefaultEmail
	}
	return &Service{
		email: adminEmail,
		repo:  repo,
	}
}

// FindDirect resuelve solo por consulta directa (perfil + rol).
func (s *Service) FindDirect(ctx context.Context) (Result, error) {
	return s.find(ctx, []Strategy{
		{Name: "query", Lookup: s.repo.ByEmail},
	})
}

// FindWithFallback intenta el RPC primero y cae a la consulta directa.
// Recién cuando ambas fallan se reporta ErrNotFound.
func (s *Service) FindWithFallback(ctx context.Context) (Result, error) {
	return s.find(ctx, []Strategy{
		{Name: "rpc", Lookup: s.repo.ByRPC},
		{Name: "query", Lookup: s.repo.ByEmail},
	})
}

func (s *Service) find(ctx context.Context, chain []Strategy) (Result, error) {
	for _, st := range chain {
		u, err := st.Lookup(ctx, s.email)
		if err != nil {
			continue
		}
		return Result{User: u, Via: st.Name}, nil
	}
	return Result{}, ErrNotFound
}
