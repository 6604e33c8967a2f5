package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS_EchoesOrigin(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://petvizor.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://petvizor.example" {
		t.Fatalf("allow-origin=%q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("allow-credentials=%q", got)
	}
	// Sin Origin => comodín
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin=%q want *", got)
	}
}

func TestCORS_SecurityHeaders(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-XSS-Protection":       "1; mode=block",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s=%q want %q", k, got, v)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/chat", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("preflight body must be empty, got %q", rec.Body.String())
	}
	if called {
		t.Fatal("preflight must not reach the next handler")
	}
	// El preflight no lleva headers de seguridad
	if rec.Header().Get("X-Frame-Options") != "" {
		t.Fatal("security headers must not be set on preflight")
	}
}

func TestCORS_ExcludedPaths(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/static/logo.png", "/favicon.ico"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "https://petvizor.example")
		h.ServeHTTP(rec, req)

		if rec.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Errorf("%s: excluded path must not get CORS headers", path)
		}
	}
}

func TestAuthContext_DevMode(t *testing.T) {
	var got string
	var ok bool
	h := AuthContext(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, found := GetIdentity(r.Context())
		got, ok = id.UserID, found
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/roles", nil)
	req.Header.Set("X-Debug-User-ID", "user-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !ok || got != "user-1" {
		t.Fatalf("expected debug identity, got ok=%v uid=%q", ok, got)
	}

	// Sin header: no hay identidad pero el request sigue
	got, ok = "", false
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if ok {
		t.Fatalf("unexpected identity without debug header: %q", got)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer abc":  "abc",
		"Basic abc":   "",
		"Bearer":      "",
		"":            "",
		"Bearer  a b": "a b",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Errorf("bearerToken(%q)=%q want %q", in, got, want)
		}
	}
}
