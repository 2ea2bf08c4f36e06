// Package server wires the credential service together: logger, credential
// store, token issuer, authenticator and the gRPC front end. It handles
// graceful shutdown on SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/credentials"
	"github.com/dmitrijs2005/gophauth/internal/server/users"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *credentials.Store
	server *gs.GRPCServer
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, logOutput io.Writer) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.NewJSONLogger(logOutput, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	issuer, err := newTokenIssuer(c)
	if err != nil {
		return nil, err
	}

	// The one credential store of the process. Every handler shares it
	// through the authenticator.
	store := credentials.NewStore()

	authenticator := users.NewAuthenticator(store, issuer, logger)
	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, authenticator)

	return &App{config: c, logger: logger, store: store, server: srv}, nil
}

func newTokenIssuer(c *config.Config) (auth.TokenIssuer, error) {
	switch c.TokenIssuer {
	case config.IssuerPlaceholder:
		return auth.PlaceholderIssuer{}, nil
	case config.IssuerJWT:
		return auth.NewJWTIssuer([]byte(c.SecretKey), c.TokenValidityDuration), nil
	}
	return nil, fmt.Errorf("unknown token issuer %q", c.TokenIssuer)
}

// watchSignals cancels the app when the process is asked to stop.
func (app *App) watchSignals(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	select {
	case sig := <-sigs:
		app.logger.Info(ctx, "Received signal", "signal", sig.String())
		cancelFunc()
	case <-ctx.Done():
	}
}

// Run serves until ctx is cancelled, a stop signal arrives or the gRPC
// server fails. The server error, if any, is returned.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "token_issuer", app.config.TokenIssuer)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.watchSignals(ctx, cancelFunc)
		return nil
	})

	g.Go(func() error {
		// A stopped server ends the signal watcher too.
		defer cancelFunc()
		return app.server.Run(ctx)
	})

	err := g.Wait()

	app.logger.Info(context.Background(), "App stopped", "credentials", app.store.Len())

	return err
}
