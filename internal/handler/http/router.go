package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/piket-xe8/piket-backend-go/internal/config"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/middleware"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Absensi      AbsensiHandler
	Laporan      LaporanHandler
	Pelanggaran  PelanggaranHandler
	Schedule     ScheduleHandler
	Student      StudentHandler
	Dashboard    DashboardHandler
	Notification NotificationHandler
	Sync         SyncHandler
	Master       MasterHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, registry *prometheus.Registry, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "piket-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/sse-token", h.Auth.SSEToken)
			})
		})

		// The event stream authorizes itself via a query token because
		// EventSource cannot set headers.
		r.Get("/events", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/absensi", func(r chi.Router) {
				r.Post("/scan", h.Absensi.Scan)
				r.Get("/today", h.Absensi.Today)
				r.Get("/log", h.Absensi.Log)
			})

			r.Route("/jadwal", func(r chi.Router) {
				r.Get("/", h.Schedule.Get)
				r.Get("/today", h.Schedule.Today)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Schedule.UpdateDay)
				})
			})

			r.Route("/siswa", func(r chi.Router) {
				r.Get("/leaderboard", h.Student.Leaderboard)
				r.Get("/me", h.Student.MyProfile)
				r.Get("/sudah-piket", h.Student.CheckedOutToday)
				r.Get("/{nama}", h.Student.Profile)
			})

			r.Route("/laporan", func(r chi.Router) {
				r.Get("/saya", h.Laporan.Mine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Laporan.List)
					r.Post("/", h.Laporan.Create)
					r.Post("/batch-delete", h.Laporan.DeleteMany)
					r.Put("/status", h.Laporan.UpdateStatus)
					r.Delete("/{id}", h.Laporan.Delete)
				})
			})

			r.Route("/notifikasi", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Post("/read-all", h.Notification.MarkAllRead)
			})

			r.Route("/sync", func(r chi.Router) {
				r.Post("/refresh", h.Sync.Refresh)
				r.Get("/status", h.Sync.Status)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/pelanggaran", func(r chi.Router) {
					r.Get("/", h.Pelanggaran.List)
					r.Post("/", h.Pelanggaran.Add)
					r.Get("/jenis", h.Pelanggaran.Kinds)
					r.Delete("/{id}", h.Pelanggaran.Delete)
				})

				r.Route("/dashboard", func(r chi.Router) {
					r.Get("/stats", h.Dashboard.AdminStats)
					r.Get("/statistics", h.Dashboard.Statistics)
					r.Get("/monitoring", h.Dashboard.Monitoring)
					r.Get("/advanced", h.Dashboard.AdvancedStats)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", h.Master.GetSettings)
					r.Put("/", h.Master.UpdateSettings)
				})
			})
		})
	})
	return r
}
