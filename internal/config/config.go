package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config agrupa toda la configuración del servicio.
// Los clientes externos se construyen una sola vez en main a partir de esto;
// ningún handler vuelve a leer env vars en caliente.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Backend gestionado (auth + data plane + object storage)
	SupabaseURL        string `envconfig:"SUPABASE_URL"`
	SupabaseAnonKey    string `envconfig:"SUPABASE_ANON_KEY"`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_ROLE_KEY"`
	StorageBucket      string `envconfig:"SUPABASE_STORAGE_BUCKET" default:"pet-photos"`

	// Acceso directo a Postgres (opcional, reemplaza el data plane REST)
	DBDSN string `envconfig:"DB_DSN"`

	// Chat completion
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel  string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	// Base de conocimiento (spreadsheet)
	SheetsAPIKey  string `envconfig:"GOOGLE_SHEETS_API_KEY"`
	SpreadsheetID string `envconfig:"KNOWLEDGE_SPREADSHEET_ID"`
	SheetRange    string `envconfig:"KNOWLEDGE_RANGE" default:"Sheet1!A1:Z1000"`

	// Correo transaccional
	SMTPHost    string `envconfig:"SMTP_HOST"`
	SMTPPort    int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser    string `envconfig:"SMTP_USER"`
	SMTPPass    string `envconfig:"SMTP_PASS"`
	SMTPFrom    string `envconfig:"SMTP_FROM"`
	NotifyEmail string `envconfig:"NOTIFY_EMAIL"`

	AdminEmail string `envconfig:"ADMIN_EMAIL"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
