package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"rallypoint/config"
	_ "rallypoint/docs"
	"rallypoint/internal/adapters/ai"
	"rallypoint/internal/adapters/auth"
	"rallypoint/internal/adapters/email"
	"rallypoint/internal/adapters/storage"
	delivery "rallypoint/internal/delivery/http"
	"rallypoint/internal/delivery/http/controllers"
	"rallypoint/internal/delivery/http/middleware"
	"rallypoint/internal/repository/postgres"
	"rallypoint/internal/services"
)

// @title RallyPoint API
// @version 1.0
// @description Volunteer management backend: events, registrations, waitlists, hour logs, and support messages.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	if err := postgres.MigrateUp(cfg.DBUrl, ""); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	resetRepo := postgres.NewPasswordResetRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	waitlistRepo := postgres.NewWaitlistRepository(db)
	hourLogRepo := postgres.NewHourLogRepository(db)
	messageRepo := postgres.NewSupportMessageRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(0)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	pictureStore, err := storage.NewDiskPictureStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		logger.Error("failed to create picture store", "err", err)
		os.Exit(1)
	}
	generator := ai.NewHTTPGenerator(&http.Client{Timeout: 30 * time.Second}, ai.ClientConfig{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIModel,
	})

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	authService := services.NewAuthService(userRepo, resetRepo, hasher, tokenIssuer, cfg.TokenExpiry, emailService, cfg.AppBaseURL)
	userService := services.NewUserService(userRepo, pictureStore)
	eventService := services.NewEventService(eventRepo)
	registrationService := services.NewRegistrationService(userRepo, eventRepo, registrationRepo, waitlistRepo)
	hourLogService := services.NewHourLogService(userRepo, eventRepo, hourLogRepo)
	messageService := services.NewSupportMessageService(messageRepo)
	statsService := services.NewStatsService(statsRepo)
	aiService := services.NewAIService(generator, userRepo, eventRepo)

	// HTTP
	mux := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		User:         controllers.NewUserController(logger, userService),
		Event:        controllers.NewEventController(logger, eventService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
		HourLog:      controllers.NewHourLogController(logger, hourLogService),
		Message:      controllers.NewMessageController(logger, messageService),
		Admin:        controllers.NewAdminController(logger, statsService),
		AI:           controllers.NewAIController(logger, aiService),
	}, tokenVerifier, cfg.UploadDir)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
