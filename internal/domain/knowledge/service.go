package knowledge

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured: falta la credencial del servicio de spreadsheet.
	ErrNotConfigured = errors.New("knowledge source not configured")
)

// Source trae las filas de la base de conocimiento ya mapeadas por header.
// Un rango vacío es un resultado vacío, no un error.
type Source interface {
	FetchRows(ctx context.Context) ([]map[string]string, error)
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

func (s *Service) Fetch(ctx context.Context) ([]map[string]string, error) {
	if s.source == nil {
		return nil, ErrNotConfigured
	}

	rows, err := s.source.FetchRows(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []map[string]string{}
	}
	return rows, nil
}
