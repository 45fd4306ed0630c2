package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/stafftrack/attendance-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	entryHandler EntryHandler,
	summaryHandler SummaryHandler,
	gridHandler GridHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", masterHandler.ListDepartments)
			r.Post("/", masterHandler.CreateDepartment)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", masterHandler.GetDepartment)
				r.Delete("/", masterHandler.DeleteDepartment)
				r.Patch("/hours", masterHandler.UpdateDepartmentHours)
			})
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", masterHandler.ListHolidays)
			r.Post("/", masterHandler.CreateHoliday)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Patch("/department", employeeHandler.TransferDepartment)
				r.Patch("/inactive", employeeHandler.MarkInactive)
				r.Patch("/salary", employeeHandler.UpdateSalary)
				r.Put("/payments/{month}", employeeHandler.UpdatePaymentStatus)
				r.Get("/summary", employeeHandler.Summary)
			})
		})

		r.Route("/entries", func(r chi.Router) {
			r.Put("/", entryHandler.Upsert)
			r.Post("/mass", entryHandler.MassEntry)
		})

		r.Post("/backfill", entryHandler.Backfill)

		r.Route("/summary", func(r chi.Router) {
			r.Get("/months", summaryHandler.Months)
			r.Get("/months/{month}", summaryHandler.ForMonth)
		})

		r.Route("/grids/{tableID}", func(r chi.Router) {
			r.Get("/", gridHandler.Get)
			r.Post("/edit", gridHandler.StartEdit)
			r.Patch("/cells/{key}", gridHandler.PatchCell)
			r.Post("/save", gridHandler.Save)
			r.Post("/cancel", gridHandler.Cancel)
		})
	})

	return r
}
