package admin

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	rpcUser   User
	rpcErr    error
	queryUser User
	queryErr  error

	rpcCalls   int
	queryCalls int
	gotEmail   string
}

func (f *fakeRepo) ByRPC(_ context.Context, email string) (User, error) {
	f.rpcCalls++
	f.gotEmail = email
	return f.rpcUser, f.rpcErr
}

func (f *fakeRepo) ByEmail(_ context.Context, email string) (User, error) {
	f.queryCalls++
	f.gotEmail = email
	return f.queryUser, f.queryErr
}

func TestFindWithFallback_RPCWins(t *testing.T) {
	repo := &fakeRepo{
		rpcUser:  User{ID: "admin-1", Email: DefaultEmail, Role: "admin"},
		queryErr: errors.New("should not be reached"),
	}
	svc := NewService(repo, "")

	res, err := svc.FindWithFallback(context.Background())
	if err != nil {
		t.Fatalf("FindWithFallback: %v", err)
	}
	if res.Via != "rpc" || res.User.ID != "admin-1" {
		t.Fatalf("unexpected result %+v", res)
	}
	if repo.queryCalls != 0 {
		t.Fatalf("query must not run when rpc succeeds, calls=%d", repo.queryCalls)
	}
	if repo.gotEmail != DefaultEmail {
		t.Fatalf("empty config must fall back to default email, got %q", repo.gotEmail)
	}
}

func TestFindWithFallback_FallsToQuery(t *testing.T) {
	repo := &fakeRepo{
		rpcErr:    errors.New("rpc missing"),
		queryUser: User{ID: "admin-1", Role: "admin"},
	}
	svc := NewService(repo, "boss@petvizor.online")

	res, err := svc.FindWithFallback(context.Background())
	if err != nil {
		t.Fatalf("FindWithFallback: %v", err)
	}
	if res.Via != "query" {
		t.Fatalf("via=%q want query", res.Via)
	}
	if repo.rpcCalls != 1 || repo.queryCalls != 1 {
		t.Fatalf("expected rpc then query, got rpc=%d query=%d", repo.rpcCalls, repo.queryCalls)
	}
	if repo.gotEmail != "boss@petvizor.online" {
		t.Fatalf("email=%q", repo.gotEmail)
	}
}

func TestFindWithFallback_AllFail(t *testing.T) {
	repo := &fakeRepo{
		rpcErr:   errors.New("down"),
		queryErr: ErrNotFound,
	}
	svc := NewService(repo, "")

	if _, err := svc.FindWithFallback(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindDirect_SkipsRPC(t *testing.T) {
	repo := &fakeRepo{
		queryUser: User{ID: "admin-1", Role: "admin"},
	}
	svc := NewService(repo, "")

	res, err := svc.FindDirect(context.Background())
	if err != nil {
		t.Fatalf("FindDirect: %v", err)
	}
	if res.Via != "query" {
		t.Fatalf("via=%q want query", res.Via)
	}
	if repo.rpcCalls != 0 {
		t.Fatalf("direct lookup must not call rpc, calls=%d", repo.rpcCalls)
	}
}
