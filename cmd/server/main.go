package main

import (
	"fmt"
	"log"

	"gstgenius/internal/config"
	"gstgenius/internal/email/noop"
	"gstgenius/internal/email/ses"
	"gstgenius/internal/extract"
	"gstgenius/internal/handler"
	"gstgenius/internal/port"
	"gstgenius/internal/repository/postgres"
	"gstgenius/internal/router"
	"gstgenius/internal/service"
	s3storage "gstgenius/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, emailSender, cfg.Share)
	extractor := extract.New(cfg.Extract)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	draftH := handler.NewDraftHandler(extractor)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, s3Client, cfg.S3)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, authH, draftH, invoiceH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
