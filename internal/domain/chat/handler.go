package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/chat", chatHandler(svc))
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type chatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
	Model     string    `json:"model"`
}

func chatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Сообщение обязательно")
			return
		}

		ex, model, err := svc.Reply(r.Context(), req.UserID, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyMessage):
				writeError(w, http.StatusBadRequest, "Сообщение обязательно")
			case errors.Is(err, ErrNotConfigured):
				writeError(w, http.StatusInternalServerError, "OpenAI API ключ не настроен")
			case errors.Is(err, ErrEmptyReply):
				writeError(w, http.StatusInternalServerError, "Пустой ответ от OpenAI")
			default:
				writeError(w, http.StatusInternalServerError, "Ошибка сервиса ИИ")
			}
			return
		}

		writeJSON(w, http.StatusOK, chatResponse{
			Response:  ex.Response,
			Timestamp: ex.CreatedAt,
			Model:     model,
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
