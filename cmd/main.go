package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"building_directory/internal/directory"
	"building_directory/internal/handlers"
	"building_directory/internal/logger"
	"building_directory/internal/repository"
	"building_directory/internal/repository/db"
	"building_directory/internal/server"
	"building_directory/internal/service"

	_ "building_directory/docs"

	"github.com/spf13/viper"
)

// @title           Buildings Directory API
// @version         1.0
// @description     Facade over an external directory/calendar service for buildings, rooms, and workspaces.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// load config.yml first; the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log_level"))

	// open the local user store
	userDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := userDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(userDB)
	dir := directory.New(
		viper.GetString("directory.base_url"),
		viper.GetDuration("directory.timeout"),
		log,
	)
	services := service.NewService(repos, dir, service.AuthConfig{
		SigningKey: viper.GetString("auth.signing_key"),
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite user store using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return db.Open(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	router := handler.InitRoutes(handlers.Options{
		CORSOrigins: viper.GetStringSlice("cors.origins"),
	})
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests (and their upstream calls) to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
