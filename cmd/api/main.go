package main

import (
	"log"
	"net/http"
	"time"

	"petvizor/internal/adapters/ai/openai"
	"petvizor/internal/adapters/knowledge/gsheets"
	"petvizor/internal/adapters/mail/smtpmail"
	"petvizor/internal/adapters/storage/memory"
	pg "petvizor/internal/adapters/storage/postgres"
	"petvizor/internal/adapters/supabase"
	"petvizor/internal/config"
	"petvizor/internal/domain/admin"
	"petvizor/internal/domain/chat"
	"petvizor/internal/domain/pets"
	"petvizor/internal/domain/profiles"
	"petvizor/internal/domain/roles"
	"petvizor/internal/platform/logger"
	"petvizor/internal/ports/auth"
	"petvizor/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional; en producción todo viene del entorno
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.NewFromEnv()

	// Clientes externos: construidos UNA sola vez acá e inyectados.
	sb := supabase.NewClient(supabase.Config{
		BaseURL:    cfg.SupabaseURL,
		AnonKey:    cfg.SupabaseAnonKey,
		ServiceKey: cfg.SupabaseServiceKey,
		Bucket:     cfg.StorageBucket,
	})

	var verifier auth.AuthVerifier
	if cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "" {
		verifier = supabase.NewVerifier(sb)
	} else {
		lg.Warn("auth verifier not configured, running in dev mode", nil)
	}

	var (
		profilesRepo profiles.Repository
		petsRepo     pets.Repository
		rolesRepo    roles.Repository
		adminRepo    admin.Repository
		chatLogRepo  chat.LogRepository
	)

	switch {
	case sb.IsConfigured():
		profilesRepo = supabase.NewProfilesRepo(sb)
		petsRepo = supabase.NewPetsRepo(sb)
		rolesRepo = supabase.NewRolesRepo(sb)
		adminRepo = supabase.NewAdminRepo(sb)
		chatLogRepo = supabase.NewChatLogRepo(sb)
		lg.Info("data plane: supabase rest", nil)

	case cfg.DBDSN != "":
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("postgres error: %v", err)
		}
		profilesRepo = pg.NewProfilesRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		rolesRepo = pg.NewRolesRepo(db)
		adminRepo = pg.NewAdminRepo(db)
		chatLogRepo = pg.NewChatLogRepo(db)
		lg.Info("data plane: direct postgres", nil)

	default:
		profilesRepo = memory.NewProfilesRepo()
		petsRepo = memory.NewPetsRepo()
		rolesRepo = memory.NewRolesRepo()
		adminRepo = memory.NewAdminRepo()
		chatLogRepo = memory.NewChatLogRepo()
		lg.Warn("data plane: in-memory (dev only)", nil)
	}

	r := router.NewRouter(router.Options{
		Cfg:          cfg,
		Logger:       lg,
		AuthVerifier: verifier,

		Profiles: profilesRepo,
		Pets:     petsRepo,
		Roles:    rolesRepo,
		Admin:    adminRepo,
		ChatLog:  chatLogRepo,

		Completer: openai.NewClient(openai.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}),
		Knowledge: gsheets.NewClient(gsheets.Config{
			APIKey:        cfg.SheetsAPIKey,
			SpreadsheetID: cfg.SpreadsheetID,
			ReadRange:     cfg.SheetRange,
		}),
		Objects: supabase.NewObjectStore(sb),
		Mailer: smtpmail.NewMailer(smtpmail.Config{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Environment})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
