package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart_climate/internal/handlers"
	"smart_climate/internal/logger"
	"smart_climate/internal/repository"
	"smart_climate/internal/server"
	"smart_climate/internal/service"
	"smart_climate/internal/weather"

	"github.com/spf13/viper"
)

const defaultSimTick = 30 * time.Second

func main() {
	// load config.yml first so the log level can come from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, service.Deps{
		SigningKey: viper.GetString("auth.signing_key"),
		Source:     newWeatherClient(),
	})
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start the occupancy/weather simulator (via composed service)
	go services.Simulator.Run(ctx, simTick())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return repository.InitDB(dbPath)
}

// newWeatherClient builds the OpenWeatherMap client from config. The API key
// travels inside the config struct, never through package-level state.
func newWeatherClient() *weather.Client {
	return weather.NewClient(weather.Config{
		APIKey:  viper.GetString("weather.api_key"),
		BaseURL: viper.GetString("weather.base_url"),
		City:    viper.GetString("weather.city"),
		Country: viper.GetString("weather.country"),
		Timeout: viper.GetDuration("weather.timeout"),
	})
}

// simTick returns the simulator interval from config, or the default.
func simTick() time.Duration {
	if d := viper.GetDuration("simulator.tick"); d > 0 {
		return d
	}
	return defaultSimTick
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
