package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/out/postgres/migrations"
	"fooddelivery/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:           "fooddelivery",
		Usage:          "food delivery ordering service",
		DefaultCommand: "serve",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files loaded before the environment",
				Value: cli.NewStringSlice(".env"),
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API and background jobs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "migrate",
				Usage:   "apply pending migrations before start",
				Value:   true,
				EnvVars: []string{"AUTO_MIGRATE"},
			},
		},
		Action: func(c *cli.Context) error {
			configs, err := cmd.LoadConfig(c.StringSlice("env-file")...)
			if err != nil {
				return err
			}
			return serve(c.Context, configs, c.Bool("migrate"))
		},
	}
}

func migrateCommand() *cli.Command {
	load := func(c *cli.Context) (cmd.Config, error) {
		return cmd.LoadConfig(c.StringSlice("env-file")...)
	}
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					configs, err := load(c)
					if err != nil {
						return err
					}
					return migrations.Up(configs.DSN())
				},
			},
			{
				Name:  "down",
				Usage: "revert all migrations",
				Action: func(c *cli.Context) error {
					configs, err := load(c)
					if err != nil {
						return err
					}
					return migrations.Down(configs.DSN())
				},
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: func(c *cli.Context) error {
					configs, err := load(c)
					if err != nil {
						return err
					}
					version, dirty, err := migrations.Version(configs.DSN())
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
					return nil
				},
			},
		},
	}
}

func serve(ctx context.Context, configs cmd.Config, autoMigrate bool) error {
	appLogger := logger.New("fooddelivery", configs.LogLevel)
	slog.SetDefault(appLogger)

	if autoMigrate {
		if err := migrations.Up(configs.DSN()); err != nil {
			return err
		}
	}

	gormDB, err := openGorm(configs)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			appLogger.Error("failed to close resources", "error", closeErr)
		}
	}()

	if err = app.Ping(ctx); err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	e := app.CreateEcho()
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("http server started", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		appLogger.Info("shutdown signal received")
	case err = <-serverErr:
		appLogger.Error("http server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		appLogger.Error("http server shutdown failed", "error", shutdownErr)
	}
	jobManager.StopAll(shutdownCtx)

	appLogger.Info("service stopped")
	return err
}

func openGorm(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  configs.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connection to postgres through gorm: %w", err)
	}
	return gormDB, nil
}
