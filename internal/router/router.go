package router

import (
	"net/http"

	"petvizor/internal/config"
	"petvizor/internal/domain/admin"
	"petvizor/internal/domain/chat"
	"petvizor/internal/domain/knowledge"
	"petvizor/internal/domain/pets"
	"petvizor/internal/domain/profiles"
	"petvizor/internal/domain/roles"
	"petvizor/internal/domain/system"
	"petvizor/internal/domain/uploads"
	"petvizor/internal/middleware"
	"petvizor/internal/platform/logger"
	"petvizor/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Options trae TODO inyectado: los clientes externos se construyen una
// sola vez en main y se pasan por acá; ningún handler crea clientes.
type Options struct {
	Cfg    config.Config
	Logger logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Profiles profiles.Repository
	Pets     pets.Repository
	Roles    roles.Repository
	Admin    admin.Repository
	ChatLog  chat.LogRepository

	Completer chat.Completer
	Knowledge knowledge.Source
	Objects   uploads.ObjectStore
	Mailer    system.Mailer
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.CORS)
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	// Services por módulo
	profilesSvc := profiles.NewService(opts.Profiles)
	petsSvc := pets.NewService(opts.Pets)
	rolesSvc := roles.NewService(opts.Roles)
	adminSvc := admin.NewService(opts.Admin, opts.Cfg.AdminEmail)
	chatSvc := chat.NewService(opts.Completer, opts.ChatLog, opts.Logger)
	knowledgeSvc := knowledge.NewService(opts.Knowledge)
	uploadsSvc := uploads.NewService(opts.Objects)

	r.Route("/api", func(api chi.Router) {
		system.RegisterRoutes(api, system.Deps{
			Cfg:    opts.Cfg,
			Mailer: opts.Mailer,
		})
		admin.RegisterRoutes(api, adminSvc)
		profiles.RegisterRoutes(api, profilesSvc)
		pets.RegisterRoutes(api, petsSvc)
		roles.RegisterRoutes(api, rolesSvc)
		uploads.RegisterRoutes(api, uploadsSvc)
		chat.RegisterRoutes(api, chatSvc)
		knowledge.RegisterRoutes(api, knowledgeSvc)
	})

	return r
}
