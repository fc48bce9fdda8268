package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
	UploadsDir     string
}

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Sede      SedeHandler
	Record    RecordHandler
	Dashboard DashboardHandler
	Report    ReportHandler
	Health    HealthHandler

	Notification NotificationHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))
		}
		registerAPIRoutes(r, JWTService, h)
	})
	return r
}

func registerAPIRoutes(r chi.Router, JWTService jwt.Service, h Handlers) {
	r.Get("/health", h.Health.Health)

	r.Post("/auth/login", h.Auth.Login)

	// Clock submissions come from the kiosk and carry only the cedula.
	r.Post("/records", h.Record.Create)

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService))

		r.Post("/auth/logout", h.Auth.Logout)
		r.Get("/auth/me", h.Auth.Me)

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Delete("/{id}", h.Employee.DeleteEmployee)
			})

			r.Route("/sedes", func(r chi.Router) {
				r.Get("/", h.Sede.List)
				r.Post("/", h.Sede.Create)
				r.Get("/{id}", h.Sede.Get)
				r.Put("/{id}", h.Sede.Update)
				r.Delete("/{id}", h.Sede.Delete)
			})

			r.Get("/records", h.Record.List)
			r.Get("/records/attendance", h.Record.ListAttendance)

			r.Get("/dashboard/summary", h.Dashboard.Summary)
			r.Get("/dashboard/today", h.Dashboard.Today)

			r.Get("/reports/csv", h.Report.ExportCSV)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Put("/read", h.Notification.MarkAsRead)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
			})
		})
	})
}
