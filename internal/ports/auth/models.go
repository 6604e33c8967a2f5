package auth

// Identity es la información del usuario resuelta desde el token.
// El servicio de identidad externo es el único dueño de estos datos;
// acá solo se leen durante la vida del request.
type Identity struct {
	UserID   string
	Email    string
	FullName string
}
