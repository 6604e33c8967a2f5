package admin

import "errors"

// DefaultEmail es la cuenta de administrador conocida del sistema.
// Sobreescribible por config (ADMIN_EMAIL).
const DefaultEmail = "admin@petvizor.online"

var ErrNotFound = errors.New("admin not found")

// User es el administrador tal como lo expone el endpoint de chequeo.
type User struct {
	ID       string
	Email    string
	FullName string
	Role     string
}
