package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"petvizor/internal/platform/httpclient"
	"petvizor/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier contra el servicio de identidad
// del backend gestionado. Presenta el token tal cual; sin reintentos.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Identity, error) {
	if v == nil || v.client == nil || !v.client.hasAuthTier() {
		return auth.Identity{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Identity{}, ErrTokenEmpty
	}

	headers := map[string]string{
		"apikey":        v.client.anonKey,
		"Authorization": "Bearer " + token,
	}

	var out struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			FullName string `json:"full_name"`
		} `json:"user_metadata"`
	}

	err := v.client.http.DoJSON(ctx, http.MethodGet, v.client.baseURL+"/auth/v1/user", headers, nil, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) &&
			(httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
			return auth.Identity{}, ErrUnauthorized
		}
		return auth.Identity{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Identity{}, errors.New("auth response missing user id")
	}

	return auth.Identity{
		UserID:   out.ID,
		Email:    strings.TrimSpace(out.Email),
		FullName: strings.TrimSpace(out.UserMetadata.FullName),
	}, nil
}
