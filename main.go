package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/carson-networks/account-server/api"
	"github.com/carson-networks/account-server/internal/config"
	"github.com/carson-networks/account-server/internal/events"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/operator"
	"github.com/carson-networks/account-server/internal/service"
	"github.com/carson-networks/account-server/internal/storage"
)

const (
	port       = "9446"
	numWorkers = 4
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("account-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, numWorkers)
	delegator.Start()
	defer delegator.Stop()

	bus := events.NewBus(logger)
	auditLog := events.NewAuditListener()
	bus.Subscribe(events.NewNotificationListener(logger))
	bus.Subscribe(auditLog)
	logger.WithField("listenerCount", bus.SubscriberCount()).Info("EventListeners.registered")

	svc := service.NewService(dbStorage, delegator, bus, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     port,
		Service:  svc,
		Database: dbStorage,
		Audit:    auditLog,
	}
	httpRest.Serve(ctx)
}
