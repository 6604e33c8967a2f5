package pets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet not found")

// Repository trae la ficha con los campos del dueño ya unidos
// (una sola consulta contra el store externo).
type Repository interface {
	GetPublicByID(ctx context.Context, id string) (PublicPet, error)
}
