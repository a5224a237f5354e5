// Package main starts the boxclip server.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/frudas24/boxclip/internal/app"
	"github.com/frudas24/boxclip/internal/clipper"
	"github.com/frudas24/boxclip/internal/config"
	"github.com/frudas24/boxclip/internal/profile"
	"github.com/frudas24/boxclip/internal/session"
	"golang.org/x/sync/errgroup"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug {
		clipper.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	profiles, err := profile.Load(cfg.ProfilesPath)
	if err != nil {
		return err
	}
	log.Printf("profiles: %d loaded (%s)", len(profiles), cfg.ProfilesPath)

	password := ""
	if cfg.PasswordMode {
		password = cfg.UIPassword
	}
	sess := session.New(password)

	appInstance, err := app.New(cfg, sess, profiles)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("boxclip starting")
	logEnvStatus(cfg)
	e := cfg.Engine
	log.Printf("engine defaults: ratio=%g min=%gx%g radius=%g rotation=%d", e.AspectRatio, e.MinWidth, e.MinHeight, e.HandleRadius, int(e.Rotation))
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found and required values are set.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if cfg.PasswordMode {
		log.Printf("env UI_PASSWORD: set")
	} else {
		log.Printf("env PASSWORD_MODE: disabled (dev mode)")
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
