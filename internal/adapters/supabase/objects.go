package supabase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petvizor/internal/domain/uploads"
)

// ObjectStore sube blobs al object storage del backend gestionado.
type ObjectStore struct {
	client *Client
	now    func() time.Time
}

func NewObjectStore(client *Client) *ObjectStore {
	return &ObjectStore{
		client: client,
		now:    time.Now,
	}
}

// Upload valida tamaño y tipo ANTES de cualquier llamada de red.
// La clave queda namespaced por identidad + timestamp; eso evita
// colisiones sin reintentos.
func (s *ObjectStore) Upload(ctx context.Context, in uploads.UploadInput) (uploads.Stored, error) {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.ContentType)), "image/") {
		return uploads.Stored{}, uploads.ErrBadType
	}
	if len(in.Data) > uploads.MaxUploadBytes {
		return uploads.Stored{}, uploads.ErrTooLarge
	}
	if !s.client.IsConfigured() || s.client.bucket == "" {
		return uploads.Stored{}, ErrNotConfigured
	}

	key := fmt.Sprintf("%s/%d-%s", in.UserID, s.now().UnixMilli(), sanitizeFileName(in.FileName))
	path := "/storage/v1/object/" + s.client.bucket + "/" + key

	headers := s.client.serviceHeaders()
	headers["x-upsert"] = "false"

	err := s.client.http.DoRaw(ctx, http.MethodPost, s.client.baseURL+path, headers, in.ContentType, in.Data, nil)
	if err != nil {
		return uploads.Stored{}, wrapUpstream(err)
	}

	return uploads.Stored{
		Key: key,
		URL: s.client.baseURL + "/storage/v1/object/public/" + s.client.bucket + "/" + key,
	}, nil
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "file"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
