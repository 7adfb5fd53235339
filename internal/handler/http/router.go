package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/expedicaonl/workforce-backend-go/internal/config"
	"github.com/expedicaonl/workforce-backend-go/internal/handler/http/middleware"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth     AuthHandler
	Employee EmployeeHandler
	Routine  RoutineHandler
	Event    EventHandler
	Settings SettingsHandler
	Route    RouteHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Post("/import", h.Employee.Import)
				r.Post("/vacation-sync", h.Employee.VacationSync)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetByID)
					r.Put("/", h.Employee.Update)
					r.Post("/status", h.Employee.ApplyStatusAction)
					r.Post("/vacation", h.Employee.ScheduleVacation)
				})
			})

			r.Route("/routine", func(r chi.Router) {
				r.Get("/", h.Routine.Get)
				r.Post("/update", h.Routine.Update)
				r.Get("/report", h.Routine.Report)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", h.Event.List)
				r.Post("/", h.Event.Create)
				r.Delete("/{id}", h.Event.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Route("/sectors/{shift}", func(r chi.Router) {
					r.Get("/", h.Settings.GetSectorConfig)
					r.Put("/", h.Settings.UpdateSectorConfig)
				})
				r.Route("/targets", func(r chi.Router) {
					r.Get("/", h.Settings.GetTargets)
					r.Put("/", h.Settings.UpdateTargets)
				})
			})

			r.Route("/routes", func(r chi.Router) {
				r.Get("/", h.Route.List)
				r.Post("/", h.Route.Create)
				r.Delete("/{id}", h.Route.Delete)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
