// cmd/sweeper/main.go
//
// Background worker that expires overdue organization invitations on a
// cron schedule.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campushq/licensing/internal/config"
	"github.com/campushq/licensing/internal/repository"
	"github.com/campushq/licensing/internal/service"
)

var (
	schedule string
	once     bool
)

func init() {
	rootCmd.Flags().StringVarP(&schedule, "schedule", "s", "*/15 * * * *", "Cron schedule for the expiry sweep")
	rootCmd.Flags().BoolVar(&once, "once", false, "Run a single sweep and exit")
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Sweeper expires overdue organization invitations",
	Long:  `Sweeper marks pending invitations past their expiry as expired, either once or on a recurring cron schedule.`,
	Run: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))

		cfg := config.Load()

		db, err := openDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		invitationRepo := repository.NewInvitationRepository(db)
		orgRepo := repository.NewOrganizationRepository(db)
		invitations := service.NewInvitationService(invitationRepo, orgRepo, nil)

		if once {
			if err := sweep(invitations); err != nil {
				log.Fatalf("Sweep failed: %v", err)
			}
			return
		}

		c := cron.New()
		_, err = c.AddFunc(schedule, func() {
			if err := sweep(invitations); err != nil {
				slog.Error("invitation sweep failed", "error", err)
			}
		})
		if err != nil {
			log.Fatalf("Failed to schedule sweep: %v", err)
		}

		c.Start()
		slog.Info("sweeper started", "schedule", schedule)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		slog.Info("sweeper shutting down")
		stopCtx := c.Stop()
		<-stopCtx.Done()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func sweep(invitations *service.InvitationService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	expired, err := invitations.ExpireOld(ctx)
	if err != nil {
		return err
	}

	slog.Info("invitation sweep completed", "expired", expired)
	return nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
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

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}
