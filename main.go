package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ecocollect-backend/internal/api"
	"ecocollect-backend/internal/auth"
	"ecocollect-backend/internal/certs"
	"ecocollect-backend/internal/config"
	"ecocollect-backend/internal/database"
	"ecocollect-backend/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Printf("Initializing database at %s", cfg.DBPath)
	if err := database.Open(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if len(cfg.Admins) == 0 {
		log.Println("Warning: no admin allow-list configured (ECOCOLLECT_ADMINS); admin login is disabled")
	}

	// Initialize auth service
	tokens := auth.NewTokens(cfg.TokenSecret)
	authSvc := auth.NewService(tokens, cfg.Admins, cfg.Production())

	// Optional OIDC single sign-on
	var oidcClient *auth.OIDCClient
	if cfg.OIDC.IssuerURL != "" {
		oidcClient, err = auth.NewOIDCClient(context.Background(), cfg.OIDC)
		if err != nil {
			log.Fatalf("Failed to initialize OIDC provider: %v", err)
		}
		log.Printf("OIDC single sign-on enabled via %s", cfg.OIDC.IssuerURL)
	}

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// API routes
	apiGroup := e.Group("/api")
	api.RegisterRoutes(apiGroup, authSvc, oidcClient, cfg)

	// Server-rendered pages
	web.RegisterPages(e, authSvc)

	// Uploaded report photos
	e.Static("/uploads", cfg.UploadDir)

	addr := ":" + cfg.Port
	if cfg.TLS {
		certPath, keyPath, err := certs.EnsureCertificates(cfg.CertDir)
		if err != nil {
			log.Fatalf("Failed to prepare TLS certificates: %v", err)
		}
		log.Printf("Starting EcoCollect backend on %s (TLS)", addr)
		e.Logger.Fatal(e.StartTLS(addr, certPath, keyPath))
	}

	log.Printf("Starting EcoCollect backend on %s", addr)
	e.Logger.Fatal(e.Start(addr))
}
