package system

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"petvizor/internal/config"

	"github.com/go-chi/chi/v5"
)

// ErrMailNotConfigured: faltan credenciales SMTP. Distinto de un fallo
// de transporte; se detecta antes de intentar el envío.
var ErrMailNotConfigured = errors.New("smtp not configured")

// Mailer es el gateway de correo transaccional.
type Mailer interface {
	IsConfigured() bool
	Send(to, subject, body string) error
}

// Deps agrupa lo que necesitan los endpoints de diagnóstico.
type Deps struct {
	Cfg    config.Config
	Mailer Mailer
}

func RegisterRoutes(r chi.Router, deps Deps) {
	r.Get("/health", healthHandler(deps))
	r.Get("/test-email", testEmailHandler(deps))
	r.Post("/test-email", testEmailHandler(deps))
	r.Get("/debug-env", debugEnvHandler(deps))
	r.Get("/debug-smtp", debugSMTPHandler(deps))
}

type healthResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

func healthHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Success:     true,
			Message:     "Petvizor API работает",
			Timestamp:   time.Now().UTC(),
			Environment: deps.Cfg.Environment,
		})
	}
}

func testEmailHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Mailer == nil || !deps.Mailer.IsConfigured() {
			writeError(w, http.StatusInternalServerError, "SMTP не настроен")
			return
		}

		to := strings.TrimSpace(deps.Cfg.NotifyEmail)
		if to == "" {
			to = deps.Cfg.SMTPFrom
		}

		err := deps.Mailer.Send(to,
			"Petvizor: тестовое письмо",
			"Это тестовое письмо от Petvizor API. Если вы его видите, SMTP настроен корректно.")
		if err != nil {
			if errors.Is(err, ErrMailNotConfigured) {
				writeError(w, http.StatusInternalServerError, "SMTP не настроен")
				return
			}
			writeError(w, http.StatusInternalServerError, "Ошибка отправки письма")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Письмо отправлено",
			"to":      to,
		})
	}
}

// Dumps de configuración redactados: solo flags set/unset, nunca valores.
func debugEnvHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := deps.Cfg
		writeJSON(w, http.StatusOK, map[string]any{
			"success":                   true,
			"environment":               cfg.Environment,
			"supabase_url_set":          cfg.SupabaseURL != "",
			"supabase_anon_key_set":     cfg.SupabaseAnonKey != "",
			"supabase_service_key_set":  cfg.SupabaseServiceKey != "",
			"db_dsn_set":                cfg.DBDSN != "",
			"openai_key_set":            cfg.OpenAIAPIKey != "",
			"google_sheets_key_set":     cfg.SheetsAPIKey != "",
			"knowledge_spreadsheet_set": cfg.SpreadsheetID != "",
		})
	}
}

func debugSMTPHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := deps.Cfg
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"smtp": map[string]any{
				"host":         cfg.SMTPHost,
				"port":         cfg.SMTPPort,
				"user_set":     cfg.SMTPUser != "",
				"password_set": cfg.SMTPPass != "",
				"from":         cfg.SMTPFrom,
				"notify_email": cfg.NotifyEmail,
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
