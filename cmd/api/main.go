package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/config"
	appHTTP "github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/handler/http"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/database"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/jwt"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/oauth"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/repository/postgresql"
	attendanceService "github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/service/attendance"
	authService "github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/service/auth"
	inventoryService "github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/service/inventory"
	reportService "github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	workSchedule, err := cfg.WorkSchedule()
	if err != nil {
		fmt.Println("Error building work schedule:", err)
		return
	}

	db, err := database.Connect(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	materialRepo := postgresql.NewMaterialRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, refreshTokenRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, userRepo, workSchedule)
	inventorySvc := inventoryService.NewInventoryService(materialRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	inventoryHandler := appHTTP.NewInventoryHandler(inventorySvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		reportHandler,
		inventoryHandler,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
