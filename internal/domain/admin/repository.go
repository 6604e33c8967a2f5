package admin

import "context"

// Repository expone las dos formas de resolver el admin contra el store:
// - ByRPC: remote procedure del data plane (puede no existir en todos los backends)
// - ByEmail: consulta directa uniendo perfil y rol
type Repository interface {
	ByRPC(ctx context.Context, email string) (User, error)
	ByEmail(ctx context.Context, email string) (User, error)
}
