// Package main provides the CLI entrypoint for the link checking service.
// It wires subcommands (serve, migrate, check, override, queue), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"secondchance/internal/config"
	"secondchance/internal/linkcheck"
	"secondchance/pkg/logger"
	"secondchance/pkg/reputation"
	"secondchance/pkg/reputation/virustotal"
	"secondchance/pkg/storage/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getReputationClient creates the VirusTotal client, wrapped so that it backs
// off for the configured cooldown once the quota is exhausted.
func getReputationClient(ctx context.Context, cfg *config.Config) reputation.Client {
	if cfg.Reputation.APIKey == "" {
		logger.Warn(ctx, "REPUTATION_API_KEY is empty, every classification will fail")
	}

	client := virustotal.New(&http.Client{Timeout: cfg.Reputation.Timeout},
		cfg.Reputation.APIKey,
		cfg.Reputation.BaseURL)

	return reputation.NewCooldownClient(client, cfg.Reputation.Cooldown)
}

// getChecker wires a linkcheck.Checker to the given storage.
func getChecker(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	options linkcheck.Options) linkcheck.Checker {
	checker, err := linkcheck.New(pgsql, getReputationClient(ctx, cfg), options)
	if err != nil {
		logger.Fatal(ctx, "could not create link checker", zap.Error(err))
	}

	return checker
}

// waitForChecker blocks until the checker's background writes are done or the
// graceful shutdown timeout expires.
func waitForChecker(ctx context.Context, cfg *config.Config, checker linkcheck.Checker) {
	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
	defer cancel()

	logger.Info(ctx, "waiting for pending writes...")
	if err := checker.Wait(waitCtx); err != nil {
		logger.Warn(ctx, "some writes did not finish in time", zap.Error(err))
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "secondchance",
		Short: "Checks whether links are safe to visit",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	// secrets may live in a .env file next to the binary
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("could not load .env file", err)
	}

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		checkCommand(cfg),
		overrideCommand(cfg),
		queueCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
