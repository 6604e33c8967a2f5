package supabase

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestVerify(t *testing.T) {
	st := &stubTransport{fn: func(req *http.Request) *http.Response {
		if got := req.Header.Get("apikey"); got != "anon-key" {
			t.Fatalf("apikey=%q", got)
		}
		if got := req.Header.Get("Authorization"); got != "Bearer session-token" {
			t.Fatalf("authorization=%q", got)
		}
		return jsonResponse(http.StatusOK,
			`{"id":"user-1","email":"a@b.c","user_metadata":{"full_name":"Анна"}}`)
	}}
	v := NewVerifier(newTestClient(st))

	id, err := v.Verify(context.Background(), "session-token")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.UserID != "user-1" || id.Email != "a@b.c" || id.FullName != "Анна" {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestVerify_Unauthorized(t *testing.T) {
	st := &stubTransport{fn: func(*http.Request) *http.Response {
		return jsonResponse(http.StatusUnauthorized, `{"message":"invalid token"}`)
	}}
	v := NewVerifier(newTestClient(st))

	_, err := v.Verify(context.Background(), "expired")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	st := &stubTransport{fn: func(*http.Request) *http.Response {
		t.Fatal("no network call expected")
		return nil
	}}
	v := NewVerifier(newTestClient(st))

	if _, err := v.Verify(context.Background(), "  "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestVerify_NotConfigured(t *testing.T) {
	v := NewVerifier(NewClient(Config{}))
	if _, err := v.Verify(context.Background(), "tok"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
