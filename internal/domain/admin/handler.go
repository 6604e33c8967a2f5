package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/admin/check-admin", checkAdminHandler(svc))
	r.Get("/admin/check-admin-simple", checkAdminSimpleHandler(svc))
}

type adminUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type checkAdminResponse struct {
	Success bool              `json:"success"`
	User    adminUserResponse `json:"user"`
	Via     string            `json:"via,omitempty"`
}

func checkAdminHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.FindDirect(r.Context())
		if err != nil {
			writeError(w, http.StatusNotFound, "Администратор не найден")
			return
		}
		writeJSON(w, http.StatusOK, toResponse(res, false))
	}
}

func checkAdminSimpleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.FindWithFallback(r.Context())
		if err != nil {
			writeError(w, http.StatusNotFound, "Администратор не найден")
			return
		}
		writeJSON(w, http.StatusOK, toResponse(res, true))
	}
}

func toResponse(res Result, withVia bool) checkAdminResponse {
	out := checkAdminResponse{
		Success: true,
		User: adminUserResponse{
			ID:       res.User.ID,
			Email:    res.User.Email,
			FullName: res.User.FullName,
			Role:     res.User.Role,
		},
	}
	if withVia {
		out.Via = res.Via
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
