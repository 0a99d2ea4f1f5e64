package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/admin"
	authhandlers "github.com/carson-networks/ledger-server/internal/handlers/v1/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/category"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/export"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/invitation"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/ledger"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/report"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/user"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage pinger
	Tokens  *auth.TokenIssuer
}

// Router builds the HTTP routes: the plain /status probe plus the huma API.
func (r *Rest) Router() http.Handler {
	router := chi.NewMux()

	statusHandler := status.NewHandler(r.Storage)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Ledger Server", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SecurityScheme: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(router, config)
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	api.UseMiddleware(auth.Middleware(api, r.Tokens, r.Service.Principals))

	svc := r.Service
	authhandlers.NewRegisterHandler(svc.Auth).Register(api)
	authhandlers.NewLoginHandler(svc.Auth).Register(api)
	user.NewProfileHandler(svc.Users).Register(api)
	admin.NewUsersHandler(svc.Users).Register(api)
	invitation.NewHandler(svc.Invitations).Register(api)
	ledger.NewHandler(svc.Ledgers).Register(api)
	category.NewHandler(svc.Categories).Register(api)
	transaction.NewListTransactionsHandler(svc.Transactions).Register(api)
	transaction.NewCreateTransactionHandler(svc.Transactions).Register(api)
	transaction.NewGetTransactionHandler(svc.Transactions).Register(api)
	transaction.NewUpdateTransactionHandler(svc.Transactions).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transactions).Register(api)
	report.NewHandler(svc.Reports).Register(api)
	export.NewHandler(svc.Exports).Register(api)

	return router
}

// Serve blocks until ctx is cancelled and in-flight requests have drained,
// or until the listener fails.
func (r *Rest) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	return r.serve(ctx, server, ln)
}

func (r *Rest) serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Warn("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("addr", ln.Addr().String()).Info("HttpServer.Serve.listening")
	err := server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}

	// Serve returns as soon as Shutdown starts; callers tear down the
	// operator and storage next, so wait for the drain.
	<-shutdownDone
	r.Logger.Info("HttpServer.Serve.shut down")
	return nil
}
