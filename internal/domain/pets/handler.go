package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/public/pets/{petID}", getPublicPetHandler(svc))
}

type ownerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type publicPetResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Species     string        `json:"species"`
	Breed       string        `json:"breed"`
	BirthDate   *time.Time    `json:"birth_date"`
	Weight      float64       `json:"weight"`
	PhotoURL    string        `json:"photo_url"`
	LostComment string        `json:"lost_comment"`
	CreatedAt   time.Time     `json:"created_at"`
	Owner       ownerResponse `json:"owner"`
}

func getPublicPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetPublicByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Питомец не найден")
				return
			}
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		writeJSON(w, http.StatusOK, publicPetResponse{
			ID:          p.ID,
			Name:        p.Name,
			Species:     p.Species,
			Breed:       p.Breed,
			BirthDate:   p.BirthDate,
			Weight:      p.Weight,
			PhotoURL:    p.PhotoURL,
			LostComment: p.LostComment,
			CreatedAt:   p.CreatedAt,
			Owner: ownerResponse{
				Name:  p.Owner.Name,
				Phone: p.Owner.Phone,
			},
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
