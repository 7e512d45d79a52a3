// Package main provides the CLI entrypoint for the research abstract portal.
// It wires subcommands (serve, migrate, jwt, profile, classify, entities),
// loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"portal/internal/config"
	"portal/internal/portal"
	"portal/pkg/annotator"
	"portal/pkg/annotator/dandelion"
	"portal/pkg/extraction"
	"portal/pkg/logger"
	"portal/pkg/storage/postgres"
	"portal/pkg/taxonomy"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
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
		ApplicationName:    cfg.Database.ApplicationName,
		StatementTimeout:   cfg.Database.StatementTimeout,
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

// getClassifier builds the provider classifier from the extraction settings.
// Without a token, or when offline is set, every call is served locally.
func getClassifier(ctx context.Context,
	cfg *config.Config,
	meter metric.Meter,
	offline bool) *extraction.ProviderClassifier {
	tax := taxonomy.Default()
	if cfg.Extraction.TaxonomyPath != "" {
		var err error
		tax, err = taxonomy.Load(cfg.Extraction.TaxonomyPath)
		if err != nil {
			logger.Fatal(ctx, "could not load taxonomy", zap.Error(err),
				zap.String("path", cfg.Extraction.TaxonomyPath))
		}
	}

	var client annotator.Client
	if !offline && cfg.Extraction.Token != "" {
		opts := []dandelion.Option{dandelion.WithLanguage(cfg.Extraction.Language)}
		if cfg.Extraction.ProviderURL != "" {
			opts = append(opts, dandelion.WithEndpoint(cfg.Extraction.ProviderURL))
		}
		client = dandelion.New(&http.Client{Timeout: cfg.Extraction.Timeout}, cfg.Extraction.Token, opts...)
	} else {
		logger.Info(ctx, "annotation provider disabled, using the local classifier")
	}

	classifier, err := extraction.NewProviderClassifier(client, tax, extraction.ProviderOptions{
		MinConfidence: cfg.Extraction.MinConfidence,
		Timeout:       cfg.Extraction.Timeout,
		Meter:         meter,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create classifier", zap.Error(err))
	}

	return classifier
}

// getPortal wires the portal service over pgsql.
func getPortal(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL, meter metric.Meter) portal.Portal {
	return portal.New(pgsql, getClassifier(ctx, cfg, meter, false), portal.NewOptions(cfg))
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "Research abstract portal",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	var logOpts []logger.Option
	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.Fatal("invalid log level", err)
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	logger.Setup(cfg.Environment, logOpts...)

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
		JWTCommand(cfg),
		profileCommand(cfg),
		classifyCommand(cfg),
		entitiesCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs returns only the -c/--config flag and its value from args so
// the standard flag package does not stop at subcommand names and flags.
func configArgs(args []string) []string {
	for i, a := range args {
		switch {
		case a == "-c" || a == "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		case strings.HasPrefix(a, "-c="):
			return []string{"-c", strings.TrimPrefix(a, "-c=")}
		case strings.HasPrefix(a, "--config="):
			return []string{"-c", strings.TrimPrefix(a, "--config=")}
		}
	}

	return nil
}
