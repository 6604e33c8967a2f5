package supabase

import (
	"context"
	"net/http"

	"petvizor/internal/domain/roles"
)

type RolesRepo struct {
	client *Client
}

func NewRolesRepo(client *Client) *RolesRepo {
	return &RolesRepo{client: client}
}

type roleRow struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DisplayName *string `json:"display_name"`
}

func (r *RolesRepo) List(ctx context.Context) ([]roles.Role, error) {
	const path = "/rest/v1/roles?select=id,name,display_name&order=id.asc"

	var rows []roleRow
	if err := r.client.rest(ctx, http.MethodGet, path, nil, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]roles.Role, 0, len(rows))
	for _, row := range rows {
		out = append(out, roles.Role{
			ID:          row.ID,
			Name:        row.Name,
			DisplayName: deref(row.DisplayName),
		})
	}
	return out, nil
}
