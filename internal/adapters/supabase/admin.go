package supabase

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"petvizor/internal/domain/admin"
)

type AdminRepo struct {
	client *Client
}

func NewAdminRepo(client *Client) *AdminRepo {
	return &AdminRepo{client: client}
}

type adminRow struct {
	ID       string  `json:"id"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
}

// ByRPC llama al remote procedure del data plane. Devuelve setof filas;
// vacío => no hay admin por este camino.
func (r *AdminRepo) ByRPC(ctx context.Context, email string) (admin.User, error) {
	in := map[string]string{"admin_email": email}

	var rows []adminRow
	if err := r.client.rest(ctx, http.MethodPost, "/rest/v1/rpc/get_admin_user", nil, in, &rows); err != nil {
		return admin.User{}, err
	}
	if len(rows) == 0 {
		return admin.User{}, admin.ErrNotFound
	}
	return toAdminUser(rows[0], email), nil
}

// ByEmail es la consulta directa uniendo perfil y rol.
// Filtra por la columna email (el original filtraba email contra id,
// un defecto latente que no se reproduce).
func (r *AdminRepo) ByEmail(ctx context.Context, email string) (admin.User, error) {
	path := "/rest/v1/profiles?email=eq." + url.QueryEscape(email) +
		"&select=id,email,full_name,user_roles(roles(name))&limit=1"

	var rows []struct {
		ID        string  `json:"id"`
		Email     *string `json:"email"`
		FullName  *string `json:"full_name"`
		UserRoles []struct {
			Roles *struct {
				Name string `json:"name"`
			} `json:"roles"`
		} `json:"user_roles"`
	}
	if err := r.client.rest(ctx, http.MethodGet, path, nil, nil, &rows); err != nil {
		return admin.User{}, err
	}
	if len(rows) == 0 {
		return admin.User{}, admin.ErrNotFound
	}

	row := rows[0]
	role := "admin"
	for _, ur := range row.UserRoles {
		if ur.Roles != nil && strings.TrimSpace(ur.Roles.Name) != "" {
			role = ur.Roles.Name
			break
		}
	}

	return admin.User{
		ID:       row.ID,
		Email:    derefOr(row.Email, email),
		FullName: deref(row.FullName),
		Role:     role,
	}, nil
}

func toAdminUser(row adminRow, fallbackEmail string) admin.User {
	role := deref(row.Role)
	if role == "" {
		role = "admin"
	}
	return admin.User{
		ID:       row.ID,
		Email:    derefOr(row.Email, fallbackEmail),
		FullName: deref(row.FullName),
		Role:     role,
	}
}

func derefOr(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}
