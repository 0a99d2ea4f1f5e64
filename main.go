package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/cache"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

const cacheSweepInterval = time.Minute

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLoggingWithLevel(envConfig.LogLevel)
	logger.Info("ledger-server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	migration, err := storage.RunMigrations(dbStorage.DB)
	if err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}
	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  migration.PreMigrationVersion,
		"postMigrationVersion": migration.PostMigrationVersion,
	}).Info("Migration status")

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	tokens := auth.NewTokenIssuer(envConfig.JWTSecret, envConfig.TokenTTL)
	svc := service.NewService(dbStorage, delegator, tokens, auth.NewPasswordHasher(envConfig.BcryptCost), service.Options{
		BaseCurrency:    envConfig.BaseCurrency,
		LookupCacheSize: envConfig.LookupCacheSize,
		LookupCacheTTL:  envConfig.LookupCacheTTL,
	})

	bootstrap, err := svc.Bootstrap(ctx, envConfig.BootstrapAdminEmail, envConfig.BootstrapAdminPassword)
	if err != nil {
		logger.WithError(err).Fatal("service.Bootstrap")
		return
	}
	entry := logger.WithField("seededCategories", bootstrap.SeededCategories)
	if bootstrap.Administrator != nil {
		entry = entry.WithField("administratorID", bootstrap.Administrator.String())
	}
	entry.Info("Bootstrap complete")

	janitor := cache.NewJanitor(logger, svc.Lookup.Caches()...)
	janitor.Start(cacheSweepInterval)
	defer janitor.Stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
		Storage: dbStorage,
		Tokens:  tokens,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Rest.Serve")
	}
}
