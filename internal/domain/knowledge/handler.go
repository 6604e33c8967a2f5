package knowledge

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/ai/knowledge", getKnowledgeHandler(svc))
}

type knowledgeResponse struct {
	Knowledge []map[string]string `json:"knowledge"`
}

func getKnowledgeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Fetch(r.Context())
		if err != nil {
			if errors.Is(err, ErrNotConfigured) {
				writeError(w, http.StatusInternalServerError, "Google Sheets API ключ не настроен")
				return
			}
			writeError(w, http.StatusInternalServerError, "Не удалось загрузить базу знаний")
			return
		}

		writeJSON(w, http.StatusOK, knowledgeResponse{Knowledge: rows})
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
