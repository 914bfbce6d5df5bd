package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-server/internal/events"
	"github.com/carson-networks/account-server/internal/handlers/v1/account"
	"github.com/carson-networks/account-server/internal/handlers/v1/audit"
	"github.com/carson-networks/account-server/internal/handlers/v1/stats"
	"github.com/carson-networks/account-server/internal/handlers/v1/status"
	"github.com/carson-networks/account-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/account-server/internal/handlers/v1/user"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/metrics"
	"github.com/carson-networks/account-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Database status.Pinger
	Audit    *events.AuditListener
}

// Router builds the HTTP routes: /status and /metrics on the bare router and
// every /api operation through huma.
func (r *Rest) Router() *mux.Router {
	router := mux.NewRouter()

	statusHandler := status.NewHandler(r.Database)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	router.Handle("/metrics", promhttp.Handler())

	api := humamux.New(router, huma.DefaultConfig("Account Server", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger), metrics.Middleware)

	accounts := r.Service.Account
	account.NewCreateAccountHandler(accounts).Register(api)
	account.NewGetAccountHandler(accounts).Register(api)
	account.NewListAccountsHandler(accounts).Register(api)
	account.NewUpdateBalanceHandler(accounts).Register(api)
	account.NewDeleteAccountHandler(accounts).Register(api)
	account.NewClearCacheHandler(accounts).Register(api)
	account.NewCategoryHandler(accounts).Register(api)
	transaction.NewTransferHandler(r.Service.Transfer).Register(api)
	transaction.NewHistoryHandler(accounts).Register(api)
	user.NewHandler(r.Service.User).Register(api)
	stats.NewHandler(r.Service.Stats).Register(api)
	audit.NewHandler(r.Audit).Register(api)

	return router
}

// Serve listens until ctx is cancelled, then shuts the server down.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
