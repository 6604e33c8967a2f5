package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/profile/{profileID}", getProfileHandler(svc))
}

type profileResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "profileID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Профиль не найден")
				return
			}
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		writeJSON(w, http.StatusOK, profileResponse{
			ID:        p.ID,
			FullName:  p.FullName,
			Phone:     p.Phone,
			CreatedAt: p.CreatedAt,
		})
	}
}

// writeJSON/writeError están duplicados intencionalmente en los handlers de
// cada módulo para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
