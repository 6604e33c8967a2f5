package roles

import (
	"encoding/json"
	"net/http"
	"strings"

	"petvizor/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/user/roles", listRolesHandler(svc))
}

type roleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type listRolesResponse struct {
	Roles []roleResponse `json:"roles"`
}

func listRolesHandler(svc *Service) http.HandlerFunc {
	// Endpoint con sesión: sin identidad resuelta => 401 sin datos.
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetIdentity(r.Context())
		if !ok || strings.TrimSpace(id.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "Не авторизован")
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Не удалось загрузить роли")
			return
		}

		out := make([]roleResponse, 0, len(items))
		for _, role := range items {
			out = append(out, roleResponse{
				ID:          role.ID,
				Name:        role.Name,
				DisplayName: role.DisplayName,
			})
		}

		writeJSON(w, http.StatusOK, listRolesResponse{Roles: out})
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
