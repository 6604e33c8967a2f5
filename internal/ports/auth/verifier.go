package auth

import "context"

// AuthVerifier resuelve un bearer token a una identidad o error.
// Nunca se reintenta: cualquier fallo termina en 401 en el handler.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
