package chat

import "time"

// Exchange es una fila append-only del log de conversaciones.
// No hay update ni delete; un fallo al guardarla no rompe el request.
type Exchange struct {
	ID        string
	UserID    string // opcional: el chat también funciona sin sesión
	Message   string
	Response  string
	CreatedAt time.Time
}

// Completion es la respuesta generada por el servicio externo.
type Completion struct {
	Text  string
	Model string
}
