package profiles

import "time"

// Profile es el perfil público de un usuario.
// El store externo es el dueño; acá es solo lectura.
type Profile struct {
	ID        string
	FullName  string
	Phone     string
	CreatedAt time.Time
}
