package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/retailops/turnos-backend/internal/config"
	"github.com/retailops/turnos-backend/internal/handler/http/middleware"
	"github.com/retailops/turnos-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Shift     ShiftHandler
	Holiday   HolidayHandler
	Schedule  ScheduleHandler
	Timeclock TimeclockHandler
	Vacation  VacationHandler
	Extras    ExtrasHandler
	Receipt   ReceiptHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "turnos-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
			r.Post("/refresh", h.Auth.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Put("/{id}/rate", h.Employee.ChangeRate)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.ListByYear)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", h.Schedule.GetGrid)
				r.Put("/entry", h.Schedule.AssignShift)
				r.Get("/totals", h.Schedule.GetTotals)
				r.Get("/pdf", h.Schedule.GetGridPDF)
			})

			r.Route("/clock", func(r chi.Router) {
				r.Post("/", h.Timeclock.Punch)
				r.Put("/{id}", h.Timeclock.EditEvent)
				r.Get("/", h.Timeclock.ListEvents)
			})

			r.Get("/timesheet", h.Timeclock.ListTimesheet)

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", h.Vacation.Book)
				r.Get("/", h.Vacation.List)
			})

			r.Route("/extras", func(r chi.Router) {
				r.Post("/", h.Extras.Create)
				r.Get("/", h.Extras.List)
				r.Delete("/{id}", h.Extras.Delete)
			})

			r.Route("/receipts", func(r chi.Router) {
				r.Get("/", h.Receipt.Get)
				r.Get("/pdf", h.Receipt.GetPDF)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Receipt.Save)
					r.Delete("/", h.Receipt.Reset)
				})
			})
		})
	})
	return r
}
