package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/chauhan-akshay123/tracks-api-sqlite-orm/internal/base"
	"github.com/chauhan-akshay123/tracks-api-sqlite-orm/internal/library"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		base.NewLogger(nil, "").Fatal("application error", "err", err)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "tracks",
		Usage: "REST API over a catalogue of tracks and users",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (.toml or .json)",
				Value:   "config.toml",
				Sources: cli.EnvVars("TRACKS_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Address the HTTP server listens on",
				Sources: cli.EnvVars("TRACKS_ADDR"),
			},
			&cli.StringFlag{
				Name:    "driver",
				Usage:   "Database driver (sqlite or postgres)",
				Sources: cli.EnvVars("TRACKS_DB_DRIVER"),
			},
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "Database connection string",
				Sources: cli.EnvVars("TRACKS_DB_DSN"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("TRACKS_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serve,
			},
			{
				Name:   "seed",
				Usage:  "Drop and recreate the tables, then insert the sample tracks",
				Action: seed,
			},
			{
				Name:  "init",
				Usage: "Write an example config file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.String("config")
					if err := base.CreateConfigFile(path); err != nil {
						return err
					}
					fmt.Fprintf(out, "wrote %s\n", path)
					return nil
				},
			},
			apiCommand(out),
		},
	}
}

// loadConfig reads the config file when present and applies flag overrides.
func loadConfig(cmd *cli.Command) (*base.Config, error) {
	config := base.DefaultConfig()
	path := cmd.String("config")
	if _, err := os.Stat(path); err == nil {
		if config, err = base.LoadConfig(path); err != nil {
			return nil, err
		}
	} else if cmd.IsSet("config") {
		return nil, fmt.Errorf("%w: %s not found", base.ErrInvalidConfig, path)
	}

	if cmd.IsSet("addr") {
		config.Addr = cmd.String("addr")
	}
	if cmd.IsSet("driver") {
		config.Driver = cmd.String("driver")
	}
	if cmd.IsSet("dsn") {
		config.DSN = cmd.String("dsn")
	}
	if cmd.IsSet("log-level") {
		config.LogLevel = cmd.String("log-level")
	}
	return config, nil
}

func openStore(config *base.Config, logger *log.Logger) (*library.Store, error) {
	return library.Open(library.Options{
		Driver:       config.Driver,
		DSN:          config.DSN,
		MaxOpenConns: config.MaxOpenConns,
		MaxIdleConns: config.MaxIdleConns,
		CacheSize:    config.CacheSize,
		CacheTTL:     config.CacheTTL,
		Logger:       logger,
	})
}

func serve(ctx context.Context, cmd *cli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := base.NewLogger(nil, config.LogLevel)

	store, err := openStore(config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "err", err)
		}
	}()
	logger.Info("database opened", "driver", config.Driver)

	return NewServer(store, logger, config.Debug).Run(ctx, config.Addr)
}

func seed(ctx context.Context, cmd *cli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := base.NewLogger(nil, config.LogLevel)

	store, err := openStore(config, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Reset(ctx); err != nil {
		return err
	}
	logger.Info("database seeded", "tracks", len(library.SeedTracks()))
	return nil
}
