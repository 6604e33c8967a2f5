package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petvizor/internal/domain/admin"
)

// ErrNoRPC: el remote procedure solo existe en el data plane gestionado.
// El strategy chain de domain/admin lo absorbe cayendo a la consulta directa.
var ErrNoRPC = errors.New("admin rpc not available on direct postgres")

type AdminRepo struct {
	db *sql.DB
}

func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

func (r *AdminRepo) ByRPC(ctx context.Context, email string) (admin.User, error) {
	return admin.User{}, ErrNoRPC
}

func (r *AdminRepo) ByEmail(ctx context.Context, email string) (admin.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.email, p.full_name, COALESCE(ro.name, 'admin')
		FROM profiles p
		LEFT JOIN user_roles ur ON ur.user_id = p.id
		LEFT JOIN roles ro ON ro.id = ur.role_id
		WHERE p.email = $1
		LIMIT 1
	`, email)

	var u admin.User
	var mail, fullName sql.NullString
	if err := row.Scan(&u.ID, &mail, &fullName, &u.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return admin.User{}, admin.ErrNotFound
		}
		return admin.User{}, err
	}

	u.Email = mail.String
	if u.Email == "" {
		u.Email = email
	}
	u.FullName = fullName.String
	return u, nil
}
