package postgres

import (
	"context"
	"database/sql"

	"petvizor/internal/domain/roles"
)

type RolesRepo struct {
	db *sql.DB
}

func NewRolesRepo(db *sql.DB) *RolesRepo {
	return &RolesRepo{db: db}
}

func (r *RolesRepo) List(ctx context.Context) ([]roles.Role, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, display_name
		FROM roles
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]roles.Role, 0)
	for rows.Next() {
		var role roles.Role
		var displayName sql.NullString
		if err := rows.Scan(&role.ID, &role.Name, &displayName); err != nil {
			return nil, err
		}
		role.DisplayName = displayName.String
		out = append(out, role)
	}

	return out, rows.Err()
}
