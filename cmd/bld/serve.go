package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"bld/internal/auth"
	"bld/internal/server"
	"bld/internal/util"
)

type serveOptions struct {
	addr         string
	staticDir    string
	secret       string
	sessionTTL   time.Duration
	secureCookie bool
	loginPerMin  int
}

func newServeCmd(a *app) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", util.EnvOrDefault("BLD_ADDR", ":8080"), "HTTP listen address")
	f.StringVar(&opts.staticDir, "static", util.EnvOrDefault("BLD_STATIC_DIR", ""), "Directory with a built frontend (optional)")
	f.StringVar(&opts.secret, "session-secret", util.EnvOrDefault("BLD_SESSION_SECRET", ""), "HMAC secret for session tokens")
	f.DurationVar(&opts.sessionTTL, "session-ttl", util.EnvDuration("BLD_SESSION_TTL", 24*time.Hour), "Session lifetime")
	f.BoolVar(&opts.secureCookie, "secure-cookie", util.EnvBool("BLD_SECURE_COOKIE", false), "Send the session cookie over HTTPS only")
	f.IntVar(&opts.loginPerMin, "login-rate", util.EnvInt("BLD_LOGIN_RATE", 5), "Login attempts allowed per minute per client")
	return cmd
}

func runServe(ctx context.Context, a *app, opts serveOptions) error {
	logger := a.logger
	logger.Info("BLD Systems dashboard")

	secret := []byte(opts.secret)
	if len(secret) == 0 {
		var err error
		if secret, err = auth.RandomSecret(); err != nil {
			return err
		}
		logger.Warn("BLD_SESSION_SECRET not set; sessions will not survive a restart")
	}
	sessions, err := auth.NewSessions(secret, opts.sessionTTL)
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		logger.Error("unable to open database", slog.String("error", err.Error()))
		return err
	}
	defer store.Close()

	burst := opts.loginPerMin
	if burst <= 0 {
		burst = 1
	}
	srv := server.New(store, sessions, logger, server.Options{
		StaticDir:    opts.staticDir,
		SecureCookie: opts.secureCookie,
		LoginRate:    rate.Every(time.Minute / time.Duration(burst)),
		LoginBurst:   burst,
	})

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
	return nil
}
