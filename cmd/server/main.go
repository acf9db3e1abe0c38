package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cividesk/braintree-bridge/internal/adapters/braintree"
	"github.com/cividesk/braintree-bridge/internal/adapters/geo"
	adapterports "github.com/cividesk/braintree-bridge/internal/adapters/ports"
	"github.com/cividesk/braintree-bridge/internal/adapters/postgres"
	"github.com/cividesk/braintree-bridge/internal/adapters/secrets"
	"github.com/cividesk/braintree-bridge/internal/config"
	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	"github.com/cividesk/braintree-bridge/internal/handlers/rest"
	"github.com/cividesk/braintree-bridge/internal/registry"
	"github.com/cividesk/braintree-bridge/internal/services/clienttoken"
	paymentService "github.com/cividesk/braintree-bridge/internal/services/payment"
	pkghttp "github.com/cividesk/braintree-bridge/pkg/http"
	"github.com/cividesk/braintree-bridge/pkg/logging"
	"github.com/cividesk/braintree-bridge/pkg/observability"
)

func main() {
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting braintree bridge",
		zap.String("version", "0.1.0"),
	)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	secretManager, err := initSecretManager(ctx, cfg, logger)
	if err != nil {
		cancel()
		logger.Fatal("Failed to initialize secret manager", zap.Error(err))
	}

	creds, err := cfg.LoadCredentials(ctx, secretManager)
	cancel()
	if err != nil {
		logger.Fatal("Failed to load processor credentials", zap.Error(err))
	}
	if missing := creds.MissingCredentials(); len(missing) > 0 {
		for _, problem := range missing {
			logger.Error(problem)
		}
		logger.Fatal("Processor credentials are incomplete")
	}

	// Optional payment journal
	var journal ports.PaymentJournal
	var db *postgres.Adapter
	if cfg.Database.URL != "" {
		dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second)
		dbCfg := postgres.DefaultConfig(cfg.Database.URL)
		dbCfg.MaxConns = cfg.Database.MaxConns
		dbCfg.MinConns = cfg.Database.MinConns

		db, err = postgres.NewAdapter(dbCtx, dbCfg, logger)
		dbCancel()
		if err != nil {
			logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer db.Close()
		journal = postgres.NewJournalRepository(db)
	} else {
		logger.Info("DATABASE_URL not set, payment journal disabled")
	}

	// Gateway client and services
	portLogger := logging.NewZapLogger(logger)

	gatewayConfig := braintree.DefaultConfig(cfg.Gateway.Environment, creds)
	gatewayConfig.Timeout = time.Duration(cfg.Gateway.Timeout) * time.Second
	httpClient := pkghttp.NewHTTPClient(pkghttp.GatewayClientConfig(), gatewayConfig.Timeout)
	gateway := braintree.NewGateway(gatewayConfig, httpClient, portLogger)

	regions := geo.NewStaticCatalog()

	reg := registry.New()
	if err := reg.Register(paymentService.NewCardService(gateway, creds, regions, journal, portLogger)); err != nil {
		logger.Fatal("Failed to register card processor", zap.Error(err))
	}
	if err := reg.Register(paymentService.NewACHService(gateway, gateway, creds, regions, journal, portLogger)); err != nil {
		logger.Fatal("Failed to register direct debit processor", zap.Error(err))
	}

	router, err := rest.NewRouter(rest.RouterConfig{
		Registry:    reg,
		ClientToken: clienttoken.NewService(gateway, portLogger),
		APIKey:      cfg.Server.APIKey,
		Logger:      portLogger,
	})
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	// Metrics server on its own port
	var healthChecker *observability.HealthChecker
	if db != nil {
		healthChecker = observability.NewHealthChecker(db.Pool())
	} else {
		healthChecker = observability.NewHealthChecker(nil)
	}
	metricsServer := observability.StartMetricsServer(fmt.Sprintf("%d", cfg.Server.MetricsPort), healthChecker, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.Gateway.Environment),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if err := observability.ShutdownMetricsServer(metricsServer); err != nil {
		logger.Error("Metrics server shutdown failed", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}

func initLogger() *zap.Logger {
	env := os.Getenv("ENVIRONMENT")

	if env == "production" {
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		logger, _ := zapCfg.Build()
		return logger
	}

	logger, _ := zap.NewDevelopment()
	return logger
}

func initSecretManager(ctx context.Context, cfg *config.Config, logger *zap.Logger) (adapterports.SecretManager, error) {
	switch cfg.Secrets.Backend {
	case "vault":
		vaultCfg := secrets.DefaultVaultConfig(cfg.Secrets.VaultAddress)
		vaultCfg.AuthMethod = cfg.Secrets.VaultAuthMethod
		vaultCfg.Token = cfg.Secrets.VaultToken
		vaultCfg.RoleID = cfg.Secrets.VaultRoleID
		vaultCfg.SecretID = cfg.Secrets.VaultSecretID
		vaultCfg.MountPath = cfg.Secrets.VaultMountPath
		return secrets.NewVaultAdapter(ctx, vaultCfg, logger)

	case "aws":
		awsCfg := secrets.DefaultAWSConfig(cfg.Secrets.AWSRegion)
		awsCfg.Profile = cfg.Secrets.AWSProfile
		awsCfg.Endpoint = cfg.Secrets.AWSEndpoint
		return secrets.NewAWSSecretsManager(ctx, awsCfg, logger)

	default:
		return secrets.NewEnvSecretManager(logger), nil
	}
}
