package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/danielhkuo/gridiron-pulse/cliparse"
	"github.com/danielhkuo/gridiron-pulse/db"
	"github.com/danielhkuo/gridiron-pulse/generator"
	"github.com/danielhkuo/gridiron-pulse/images"
	"github.com/danielhkuo/gridiron-pulse/middleware"
	"github.com/danielhkuo/gridiron-pulse/router"
	"github.com/danielhkuo/gridiron-pulse/scheduler"
)

func main() {
	var err error

	// Load .env if present (dev convenience; real deploys set env directly)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load head-shot lookup table once; listings fall back to placeholders
	// when it is absent or unreadable.
	headshots := map[string]string{}
	if cfg.HeadshotMapPath != "" {
		headshots, err = images.LoadMap(cfg.HeadshotMapPath)
		if err != nil {
			slog.Warn("headshot map unavailable, using placeholders", "error", err)
			headshots = map[string]string{}
		} else {
			slog.Info("headshot map loaded", "players", len(headshots))
		}
	}
	imgs := images.NewResolver(headshots)

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		slog.Error("invalid time zone", "tz", cfg.TimeZone, "error", err)
		os.Exit(1)
	}

	// Daily poll generation, owned here so shutdown stops it cleanly
	gen := generator.New(dbConn)
	sched := scheduler.New(dbConn, gen, cfg.GenerateHour, loc)
	schedCtx, stopSched := context.WithCancel(context.Background())
	go sched.Run(schedCtx)

	// Create router
	mux := router.NewRouter(dbConn, imgs, gen, loc)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		stopSched()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
