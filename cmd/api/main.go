// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/campushq/licensing/internal/auth"
	"github.com/campushq/licensing/internal/config"
	"github.com/campushq/licensing/internal/handler"
	"github.com/campushq/licensing/internal/metrics"
	"github.com/campushq/licensing/internal/middleware"
	"github.com/campushq/licensing/internal/pdfrender"
	"github.com/campushq/licensing/internal/repository"
	"github.com/campushq/licensing/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	planRepo := repository.NewSubscriptionPlanRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	poolRepo := repository.NewLicensePoolRepository(db)
	assignmentRepo := repository.NewLicenseAssignmentRepository(db)
	entitlementRepo := repository.NewEntitlementRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	txnRepo := repository.NewPaymentTransactionRepository(db)
	addonRepo := repository.NewAddonOrderRepository(db)

	// Initialize auth services
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize invoice rendering client
	pdfConfig := pdfrender.DefaultConfig()
	pdfConfig.BaseURL = cfg.PDFRender.BaseURL
	pdfClient := pdfrender.NewClient(pdfConfig)

	// Initialize services
	subscriptionService := service.NewSubscriptionService(subRepo, planRepo)
	licenseService := service.NewLicenseService(poolRepo, assignmentRepo, subRepo)
	entitlementService := service.NewEntitlementService(entitlementRepo, assignmentRepo, subRepo, planRepo)
	invitationService := service.NewInvitationService(invitationRepo, orgRepo, licenseService)
	billingService := service.NewBillingService(
		subRepo,
		planRepo,
		txnRepo,
		addonRepo,
		orgRepo,
		pdfClient,
		cfg.Billing.AddonRatePerMember,
	)

	// Initialize handlers
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	licenseHandler := handler.NewLicenseHandler(licenseService, entitlementService)
	entitlementHandler := handler.NewEntitlementHandler(entitlementService)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	billingHandler := handler.NewBillingHandler(billingService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", metrics.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/plans", subscriptionHandler.ListPlans)
		r.Route("/invites", func(r chi.Router) {
			r.Get("/{token}", invitationHandler.Preview)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager))

			// Subscription routes
			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/", subscriptionHandler.Purchase)
				r.Get("/{id}", subscriptionHandler.Get)
				r.Put("/{id}/seats", subscriptionHandler.UpdateSeats)
				r.Post("/{id}/cancel", subscriptionHandler.Cancel)
				r.Post("/{id}/renew", subscriptionHandler.Renew)
				r.Post("/{id}/upgrade", subscriptionHandler.Upgrade)
			})

			// Organization-scoped routes
			r.Route("/organizations/{orgID}", func(r chi.Router) {
				r.Get("/subscriptions", subscriptionHandler.List)
				r.Get("/pools", licenseHandler.ListPools)
				r.Get("/seats/available", licenseHandler.AvailableSeats)
				r.Get("/invitations", invitationHandler.List)
				r.Get("/invitations/stats", invitationHandler.Stats)
				r.Get("/members", invitationHandler.Members)
				r.Get("/billing/dashboard", billingHandler.Dashboard)
				r.Get("/billing/invoices", billingHandler.InvoiceHistory)
				r.Get("/billing/projection", billingHandler.ProjectCosts)
				r.Get("/billing/contacts", billingHandler.BillingContacts)
			})

			// License pool routes
			r.Route("/pools", func(r chi.Router) {
				r.Post("/", licenseHandler.CreatePool)
				r.Post("/{poolID}/assign", licenseHandler.Assign)
				r.Post("/{poolID}/assign/bulk", licenseHandler.BulkAssign)
				r.Put("/{poolID}/allocation", licenseHandler.UpdateAllocation)
				r.Put("/{poolID}/auto-assign", licenseHandler.ConfigureAutoAssign)
				r.Get("/{poolID}/assignments", licenseHandler.PoolAssignments)
			})

			// Assignment routes
			r.Route("/assignments", func(r chi.Router) {
				r.Post("/unassign", licenseHandler.Unassign)
				r.Post("/transfer", licenseHandler.Transfer)
			})

			// User-scoped routes
			r.Route("/users/{userID}", func(r chi.Router) {
				r.Get("/assignments", licenseHandler.UserAssignments)
				r.Get("/entitlements", entitlementHandler.UserEntitlements)
				r.Get("/access", entitlementHandler.CheckAccess)
			})

			// Entitlement routes
			r.Route("/entitlements", func(r chi.Router) {
				r.Post("/subscriptions/{subscriptionID}/sync", entitlementHandler.Sync)
				r.Get("/subscriptions/{subscriptionID}/stats", entitlementHandler.Stats)
				r.Post("/bulk/grant", entitlementHandler.BulkGrant)
				r.Post("/bulk/revoke", entitlementHandler.BulkRevoke)
			})

			// Invitation routes
			r.Route("/invitations", func(r chi.Router) {
				r.Post("/", invitationHandler.Invite)
				r.Post("/bulk", invitationHandler.BulkInvite)
				r.Post("/{id}/resend", invitationHandler.Resend)
				r.Post("/{id}/cancel", invitationHandler.Cancel)
				r.Post("/accept/{token}", invitationHandler.Accept)
			})

			// Billing routes
			r.Route("/org-billing", func(r chi.Router) {
				r.Post("/invoice/{transactionID}", billingHandler.GenerateInvoice)
				r.Get("/invoice/{invoiceID}/download", billingHandler.DownloadInvoice)
				r.Get("/subscriptions/{subscriptionID}/seat-cost", billingHandler.SeatAdditionCost)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				pattern := chi.RouteContext(r.Context()).RoutePattern()
				if pattern == "" {
					pattern = r.URL.Path
				}
				metrics.HTTPRequestsTotal.WithLabelValues(
					r.Method,
					pattern,
					strconv.Itoa(ww.Status()),
				).Inc()

				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
