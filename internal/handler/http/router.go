package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/gymrepublic/gym-console/internal/handler/http/middleware"
	"github.com/gymrepublic/gym-console/internal/pkg/jwt"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	// Metrics serves /metrics when not nil.
	Metrics http.Handler
}

type Handlers struct {
	Auth         AuthHandler
	Dashboard    DashboardHandler
	Staff        StaffHandler
	Attendance   AttendanceHandler
	Payroll      PayrollHandler
	Inventory    InventoryHandler
	Sales        SalesHandler
	Customer     CustomerHandler
	Notification NotificationHandler
	Export       ExportHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Document-URL"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// SSE authenticates with a short-lived token in the query string
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})

			r.Get("/notifications/token", h.Notification.GetSSEToken)

			r.Get("/dashboard", h.Dashboard.Get)

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.Staff.List)
				r.Get("/positions", h.Staff.Positions)
				r.Put("/{id}", h.Staff.Update)
				r.Delete("/{id}", h.Staff.Archive)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/summary", h.Attendance.Summary)
				r.Get("/export", h.Attendance.Export)
				r.Post("/clock", h.Attendance.Clock)
				r.Post("/mark", h.Attendance.Mark)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.List)
				r.Post("/", h.Payroll.Create)
				r.Delete("/{id}", h.Payroll.Archive)
				r.Get("/{id}/payslip", h.Payroll.Payslip)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", h.Inventory.List)
				r.Get("/summary", h.Inventory.Summary)
				r.Get("/export", h.Inventory.Export)
				r.Put("/{id}", h.Inventory.Update)
				r.Delete("/{id}", h.Inventory.Archive)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", h.Sales.Overview)
				r.Get("/export", h.Sales.Export)
				r.Delete("/memberships/{id}", h.Sales.ArchiveMembership)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.Customer.List)
				r.Put("/{id}", h.Customer.Update)
				r.Delete("/{id}", h.Customer.Archive)
			})

			r.Get("/exports/*", h.Export.Download)
		})
	})
	return r
}
