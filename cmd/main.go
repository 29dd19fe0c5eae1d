package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"controlling_dishwasher/internal/config"
	"controlling_dishwasher/internal/handlers"
	"controlling_dishwasher/internal/logger"
	"controlling_dishwasher/internal/repository"
	"controlling_dishwasher/internal/repository/db"
	"controlling_dishwasher/internal/server"
	"controlling_dishwasher/internal/service"
)

const configDir = "configs"

// @title           Dishwasher Controller API
// @version         1.0
// @description     Runs wash cycles against a simulated dishwasher and exposes its maintenance log.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	log := logger.Get(logger.InfoLevel)

	cfg, err := config.Load(configDir)
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	log.SetLevel(cfg.LogLevel)

	opts, err := cfg.ControllerOptions()
	if err != nil {
		log.Fatalw("invalid dishwasher settings", "err", err)
	}

	conn, err := openDB(cfg.DBPath, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Deps{
		ControllerOptions: opts,
		Auth: service.AuthConfig{
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
		Log: log.Named("dishwasher"),
	})
	apiHandler := handlers.NewHandler(services, log)

	srv := server.New()
	errc := runHTTPServer(srv, cfg.Port, apiHandler)
	log.Infow("server started", "port", cfg.Port, "db", cfg.DBPath)

	waitForShutdown(srv, errc, cfg.ShutdownTimeout, log)
}

func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	if path == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		path = "app.db"
	}
	return db.InitDB(path)
}

// runHTTPServer serves in the background and reports a failed listen on the returned channel.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler) <-chan error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Run(port, handler.InitRoutes())
	}()
	return errc
}

// waitForShutdown blocks until a termination signal or a server failure,
// then drains in-flight requests.
func waitForShutdown(srv *server.Server, errc <-chan error, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	case err := <-errc:
		if err != nil {
			log.Errorw("server stopped", "err", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
