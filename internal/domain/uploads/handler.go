package uploads

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"petvizor/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/upload-image", uploadImageHandler(svc))
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

func uploadImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetIdentity(r.Context())
		if !ok || strings.TrimSpace(id.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "Не авторизован")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Файл не найден")
			return
		}
		defer file.Close()

		// Leemos como máximo un byte más que el límite: suficiente para que
		// el gateway detecte el exceso sin cargar blobs arbitrarios en memoria.
		data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Файл не найден")
			return
		}

		stored, err := svc.Upload(r.Context(), UploadInput{
			UserID:      id.UserID,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingFile):
				writeError(w, http.StatusBadRequest, "Файл не найден")
			case errors.Is(err, ErrTooLarge):
				writeError(w, http.StatusBadRequest, "Файл слишком большой (макс. 3MB)")
			case errors.Is(err, ErrBadType):
				writeError(w, http.StatusBadRequest, "Недопустимый тип файла")
			default:
				writeError(w, http.StatusInternalServerError, "Ошибка загрузки файла")
			}
			return
		}

		writeJSON(w, http.StatusOK, uploadResponse{
			Success:  true,
			URL:      stored.URL,
			FileName: stored.Key,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
