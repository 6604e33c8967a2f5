package uploads

import (
	"context"
	"errors"
)

// MaxUploadBytes es el techo de tamaño del contrato externo (3 MiB).
const MaxUploadBytes = 3 << 20

var (
	ErrMissingFile = errors.New("file is missing")

	// ErrTooLarge / ErrBadType los devuelve el gateway ANTES de tocar la red.
	ErrTooLarge = errors.New("file exceeds size limit")
	ErrBadType  = errors.New("file is not an image")
)

type UploadInput struct {
	UserID      string
	FileName    string
	ContentType string
	Data        []byte
}

// Stored es el resultado de subir el objeto: clave y URL pública resuelta.
type Stored struct {
	Key string
	URL string
}

// ObjectStore sube el blob al object storage externo.
// La validación de tamaño/tipo ocurre en el adapter antes de cualquier
// llamada de red; la colisión de claves se evita con el timestamp en la
// clave, no con reintentos.
type ObjectStore interface {
	Upload(ctx context.Context, in UploadInput) (Stored, error)
}

type Service struct {
	store ObjectStore
}

func NewService(store ObjectStore) *Service {
	return &Service{store: store}
}

func (s *Service) Upload(ctx context.Context, in UploadInput) (Stored, error) {
	if len(in.Data) == 0 {
		return Stored{}, ErrMissingFile
	}
	return s.store.Upload(ctx, in)
}
