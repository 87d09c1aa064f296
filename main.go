package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tms-lite/config"
	"tms-lite/database"
	"tms-lite/logger"
	"tms-lite/routes"
	catalogService "tms-lite/services/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "tms-lite",
		Short: "Transport management and trending catalog servers",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.SetLevel(log.LevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "transport",
			Short: "Serve the transport management app",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := config.Load()
				return serve(cfg, cfg.AppPort, func(app *fiber.App, db *gorm.DB) error {
					routes.SetupTransportRoutes(app, db, cfg)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "catalog",
			Short: "Refresh the trending catalog and serve it",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := config.Load()
				return serve(cfg, cfg.CatalogPort, func(app *fiber.App, db *gorm.DB) error {
					catalog := catalogService.NewService(db)
					if err := catalog.Refresh(cmd.Context()); err != nil {
						return fmt.Errorf("refresh catalog: %w", err)
					}
					routes.SetupCatalogRoutes(app, catalog)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Run database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := config.Load()
				logger.Info("🚀 Running database migrations...")
				db, err := database.InitDB(cfg.Database)
				if err != nil {
					return err
				}
				defer database.Close(db)
				logger.Success("Migration completed successfully!")
				return nil
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// serve opens the database, mounts routes with setup and listens on port
// until SIGINT or SIGTERM.
func serve(cfg config.Config, port string, setup func(app *fiber.App, db *gorm.DB) error) error {
	if logFile, err := logger.EnableFile("log/app"); err != nil {
		logger.Error("Failed to open log file", err)
	} else {
		defer logFile.Close()
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return err
	}
	defer database.Close(db)

	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()
	defer asyncLogger.Close()

	app := routes.NewApp(cfg, asyncLogger)
	if err := setup(app, db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	addr := cfg.Addr(port)
	go func() {
		logger.Success("Server is running on " + addr)
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Failed to shut down cleanly", err)
		return err
	}
	return nil
}
