package http

import (
	"log/slog"
	"os"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/user"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/handler/http/middleware"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	inventoryHandler InventoryHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bodega-ferroactiva"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/me", attendanceHandler.GetMyEvents)

				// Supervisors repair and audit punches
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSupervisor)
					r.Get("/events", attendanceHandler.ListEvents)
					r.Post("/events", attendanceHandler.CreateEvent)
					r.Delete("/events/{eventID}", attendanceHandler.DeleteEvent)
				})
			})

			r.Route("/reports/attendance", func(r chi.Router) {
				r.Get("/me", reportHandler.GetMyMonthlyReport)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsViewAll))
					r.Get("/", reportHandler.GetMonthlyReport)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsExport))
					r.Get("/export", reportHandler.ExportMonthlyReport)
				})
			})

			r.Route("/materials", func(r chi.Router) {
				r.Get("/", inventoryHandler.ListMaterials)
				r.Get("/{materialID}", inventoryHandler.GetMaterial)
				r.Get("/{materialID}/movements", inventoryHandler.ListMovements)

				// Stock changes stay with bodega staff
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireWarehouse)
					r.Post("/", inventoryHandler.CreateMaterial)
					r.Put("/{materialID}", inventoryHandler.UpdateMaterial)
					r.Post("/{materialID}/movements", inventoryHandler.RegisterMovement)
				})
			})
		})
	})
	return r
}
