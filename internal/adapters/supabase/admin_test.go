package supabase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"petvizor/internal/domain/admin"
)

func TestAdminByRPC(t *testing.T) {
	st := &stubTransport{fn: func(req *http.Request) *http.Response {
		if !strings.HasSuffix(req.URL.Path, "/rest/v1/rpc/get_admin_user") {
			t.Fatalf("unexpected path %q", req.URL.Path)
		}
		return jsonResponse(http.StatusOK,
			`[{"id":"admin-1","email":"admin@petvizor.online","full_name":"Admin","role":null}]`)
	}}
	repo := NewAdminRepo(newTestClient(st))

	u, err := repo.ByRPC(context.Background(), "admin@petvizor.online")
	if err != nil {
		t.Fatalf("ByRPC: %v", err)
	}
	if u.ID != "admin-1" || u.Email != "admin@petvizor.online" {
		t.Fatalf("unexpected user %+v", u)
	}
	// role nulo cae al default
	if u.Role != "admin" {
		t.Fatalf("role=%q want admin", u.Role)
	}
}

func TestAdminByRPC_EmptySet(t *testing.T) {
	st := &stubTransport{fn: func(*http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `[]`)
	}}
	repo := NewAdminRepo(newTestClient(st))

	_, err := repo.ByRPC(context.Background(), "admin@petvizor.online")
	if !errors.Is(err, admin.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminByEmail(t *testing.T) {
	st := &stubTransport{fn: func(req *http.Request) *http.Response {
		q := req.URL.RawQuery
		if !strings.Contains(q, "email=eq.") {
			t.Fatalf("query must filter by email column, got %q", q)
		}
		return jsonResponse(http.StatusOK,
			`[{"id":"admin-1","email":"admin@petvizor.online","full_name":"Admin",
			   "user_roles":[{"roles":{"name":"superadmin"}}]}]`)
	}}
	repo := NewAdminRepo(newTestClient(st))

	u, err := repo.ByEmail(context.Background(), "admin@petvizor.online")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if u.Role != "superadmin" {
		t.Fatalf("role=%q want superadmin", u.Role)
	}
}

func TestAdminByEmail_NoRoleRows(t *testing.T) {
	st := &stubTransport{fn: func(*http.Request) *http.Response {
		return jsonResponse(http.StatusOK,
			`[{"id":"admin-1","email":null,"full_name":null,"user_roles":[]}]`)
	}}
	repo := NewAdminRepo(newTestClient(st))

	u, err := repo.ByEmail(context.Background(), "admin@petvizor.online")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if u.Role != "admin" {
		t.Fatalf("role=%q want admin default", u.Role)
	}
	if u.Email != "admin@petvizor.online" {
		t.Fatalf("null email must fall back to the lookup email, got %q", u.Email)
	}
}
