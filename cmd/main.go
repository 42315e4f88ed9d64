package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chargebench/internal/clock"
	"chargebench/internal/gpio"
	"chargebench/internal/handlers"
	"chargebench/internal/logger"
	"chargebench/internal/repository"
	"chargebench/internal/repository/db"
	"chargebench/internal/server"
	"chargebench/internal/service"

	"github.com/spf13/viper"
)

const defaultMonitorTick = 20 * time.Millisecond

// @title           Charge Bench API
// @version         1.0
// @description     HTTP control of a single-line capacitor charge bench: time-bounded charge cycles, emergency stop, live state and cycle history.
// @BasePath        /
func main() {
	// load config.yml first so the log level is configurable
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log_level"))

	// open DB for the cycle event history
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// acquire the charge line
	line, err := openChargeLine(log)
	if err != nil {
		log.Fatalw("failed to acquire charge line", "err", err)
	}
	defer func() {
		if cerr := line.Close(); cerr != nil {
			log.Errorw("failed to release charge line", "err", cerr)
		}
	}()

	// wire dependencies
	clk := clock.NewWallclock()
	repos := repository.NewRepository(database)
	services := service.NewService(repos, line, clk, log)
	apiHandler := handlers.NewHandler(services, clk, benchInfoFromConfig(), log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// force the line LOW before serving; a restart always begins idle
	if _, err := services.Charger.Stop(ctx); err != nil {
		log.Fatalw("failed to drive charge line low at boot", "err", err)
	}

	// start the timeout monitor
	go services.Monitor.Run(ctx, monitorTick())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, services, log)
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
		log.Infow("db.path not set in config; using default file", "default", "chargebench.db")
		dbPath = "chargebench.db"
	}
	return db.InitDB(dbPath)
}

// openChargeLine returns the configured GPIO line, or an in-memory fake
// when gpio.fake is set (useful on machines without the character device).
func openChargeLine(log *logger.Logger) (gpio.Line, error) {
	if viper.GetBool("gpio.fake") {
		log.Infow("gpio.fake enabled; using in-memory charge line")
		return gpio.NewFakeLine(), nil
	}

	chip := viper.GetString("gpio.chip")
	if chip == "" {
		chip = "gpiochip0"
	}
	offset := viper.GetInt("gpio.line")
	log.Infow("acquiring charge line", "chip", chip, "line", offset)
	return gpio.NewRealLine(chip, offset)
}

func benchInfoFromConfig() handlers.BenchInfo {
	return handlers.BenchInfo{
		Project:     viper.GetString("info.project"),
		Description: viper.GetString("info.description"),
		ChargeLine:  viper.GetInt("gpio.line"),
		APIVersion:  viper.GetString("info.api_version"),
	}
}

func monitorTick() time.Duration {
	if ms := viper.GetInt("monitor.tick_ms"); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultMonitorTick
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
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, services *service.Service, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the monitor loop
	cancel()

	// never leave the capacitor charging across a restart
	if _, err := services.Charger.Stop(context.Background()); err != nil {
		log.Errorw("failed to drive charge line low on shutdown", "err", err)
	}

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
