package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petvizor/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, phone, created_at
		FROM profiles
		WHERE id = $1
	`, id)

	var p profiles.Profile
	var fullName, phone sql.NullString
	if err := row.Scan(&p.ID, &fullName, &phone, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}

	p.FullName = fullName.String
	p.Phone = phone.String
	return p, nil
}
