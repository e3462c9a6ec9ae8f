// Package main initializes and starts the LeadVault HTTP server, setting up
// configuration, logging, the database connection, repositories, services,
// and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"leadvault/internal/config"
	"leadvault/internal/db"
	"leadvault/internal/logger"
	"leadvault/internal/repository"
	"leadvault/internal/scanner"
	"leadvault/internal/server/handler/http"
	"leadvault/internal/service"
	"leadvault/internal/token"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("session token secret is required (-s flag or JWT_SECRET)")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for accounts and contact records.
	accountRepo := repository.NewPostgresAccountRepository(postgresDB)
	contactRepo := repository.NewPostgresContactRepository(postgresDB)

	// Initialize business-logic services.
	tokens := token.NewHS256([]byte(options.JWTSecret), options.TokenTTL)
	authService := service.NewAuthService(accountRepo, tokens)
	contactService := service.NewContactService(contactRepo, accountRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	contactHandler := &http.ContactHandler{ContactService: contactService}
	adminHandler := &http.AdminHandler{Contacts: contactService, Accounts: accountRepo}
	scanHandler := &http.ScanHandler{Extractors: map[string]scanner.Extractor{
		http.ScanBusinessCard: &scanner.BusinessCard{Delay: options.ScanDelay},
		http.ScanWhatsAppQR:   &scanner.WhatsAppQR{Delay: options.ScanDelay / 2},
	}}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, contactHandler, adminHandler, scanHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
