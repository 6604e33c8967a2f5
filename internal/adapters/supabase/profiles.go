package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"petvizor/internal/domain/profiles"
)

type ProfilesRepo struct {
	client *Client
}

func NewProfilesRepo(client *Client) *ProfilesRepo {
	return &ProfilesRepo{client: client}
}

// profileRow es el schema validado de la respuesta del data plane.
// Campos nullable se convierten a defaults acá, en el borde.
type profileRow struct {
	ID        string    `json:"id"`
	FullName  *string   `json:"full_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	path := "/rest/v1/profiles?id=eq." + url.QueryEscape(id) +
		"&select=id,full_name,phone,created_at&limit=1"

	var rows []profileRow
	if err := r.client.rest(ctx, http.MethodGet, path, nil, nil, &rows); err != nil {
		return profiles.Profile{}, err
	}
	if len(rows) == 0 {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := rows[0]
	return profiles.Profile{
		ID:        row.ID,
		FullName:  deref(row.FullName),
		Phone:     deref(row.Phone),
		CreatedAt: row.CreatedAt,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
