package supabase

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"petvizor/internal/domain/uploads"
)

func TestUpload_ValidatesBeforeNetwork(t *testing.T) {
	st := &stubTransport{fn: func(*http.Request) *http.Response {
		t.Fatal("no network call expected")
		return nil
	}}
	store := NewObjectStore(newTestClient(st))

	// Tipo no imagen
	_, err := store.Upload(context.Background(), uploads.UploadInput{
		UserID:      "user-1",
		FileName:    "doc.pdf",
		ContentType: "application/pdf",
		Data:        []byte("x"),
	})
	if !errors.Is(err, uploads.ErrBadType) {
		t.Fatalf("expected ErrBadType, got %v", err)
	}

	// Excede el techo de 3 MiB
	_, err = store.Upload(context.Background(), uploads.UploadInput{
		UserID:      "user-1",
		FileName:    "big.png",
		ContentType: "image/png",
		Data:        make([]byte, uploads.MaxUploadBytes+1),
	})
	if !errors.Is(err, uploads.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	if st.calls != 0 {
		t.Fatalf("expected zero transport calls, got %d", st.calls)
	}
}

func TestUpload_NotConfigured(t *testing.T) {
	st := &stubTransport{fn: func(*http.Request) *http.Response {
		t.Fatal("no network call expected")
		return nil
	}}
	store := NewObjectStore(NewClient(Config{Transport: st}))

	_, err := store.Upload(context.Background(), uploads.UploadInput{
		UserID:      "user-1",
		FileName:    "avatar.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if st.calls != 0 {
		t.Fatalf("expected zero transport calls, got %d", st.calls)
	}
}

func TestUpload_Success(t *testing.T) {
	st := &stubTransport{fn: func(*http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{"Key":"ignored"}`)
	}}
	store := NewObjectStore(newTestClient(st))
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	data := []byte("png-bytes")
	stored, err := store.Upload(context.Background(), uploads.UploadInput{
		UserID:      "user-1",
		FileName:    "мой avatar.png",
		ContentType: "image/png",
		Data:        data,
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	wantKey := "user-1/1700000000000-____avatar.png"
	if stored.Key != wantKey {
		t.Fatalf("key=%q want %q", stored.Key, wantKey)
	}
	wantURL := "https://proj.supabase.test/storage/v1/object/public/pet-photos/" + wantKey
	if stored.URL != wantURL {
		t.Fatalf("url=%q want %q", stored.URL, wantURL)
	}

	if st.calls != 1 {
		t.Fatalf("expected one transport call, got %d", st.calls)
	}
	req := st.lastReq
	if req.Method != http.MethodPost {
		t.Fatalf("method=%s", req.Method)
	}
	if !strings.HasSuffix(req.URL.Path, "/storage/v1/object/pet-photos/"+wantKey) {
		t.Fatalf("path=%q", req.URL.Path)
	}
	if got := req.Header.Get("Content-Type"); got != "image/png" {
		t.Fatalf("content-type=%q", got)
	}
	if got := req.Header.Get("x-upsert"); got != "false" {
		t.Fatalf("x-upsert=%q", got)
	}
	if got := req.Header.Get("Authorization"); got != "Bearer service-key" {
		t.Fatalf("authorization=%q", got)
	}
	if !bytes.Equal(st.lastBody, data) {
		t.Fatalf("uploaded body does not match input")
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"photo.png":     "photo.png",
		"my photo.png":  "my_photo.png",
		"  ":            "file",
		"a/b\\c.png":    "a_b_c.png",
		"кот-рыжий.jpg": "___-_____.jpg",
	}
	for in, want := range cases {
		if got := sanitizeFileName(in); got != want {
			t.Errorf("sanitizeFileName(%q)=%q want %q", in, got, want)
		}
	}
}
