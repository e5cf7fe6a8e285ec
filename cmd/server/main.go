package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiliankoe/champroll/internal/champions"
	"github.com/kiliankoe/champroll/internal/config"
	"github.com/kiliankoe/champroll/internal/game"
	"github.com/kiliankoe/champroll/internal/httpapi"
	"github.com/kiliankoe/champroll/internal/ws"
	staticserver "github.com/kiliankoe/champroll/static"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
)

var version = "dev" // Set at build time via -ldflags

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		portFlag    = flag.String("port", "", "Port to listen on (overrides PORT env var)")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`champroll - random champions for custom games

Usage: %s [options]

Options:
  -h, --help      Show this help message
  -v, --version   Show version information
  --port PORT     Port to listen on (default: 8080 or PORT env var)

Environment Variables (also read from .env):
  PORT                    Port to listen on (default: 8080)
  PUBLIC_URL              Base URL used in session share QR codes (default: http://localhost:PORT)
  SESSION_TTL_MINUTES     Idle minutes before a session is dropped (default: 120)
  SWEEP_INTERVAL_SECONDS  How often idle in-memory sessions are swept (default: 60)
  STORE                   Session store: "memory" or "redis" (default: memory)
  REDIS_HOST              Redis host (default: localhost)
  REDIS_PORT              Redis port (default: 6379)
  REDIS_PASSWORD          Redis password
  EXPORT_ENABLED          Append generated rosters to a file (default: false)
  EXPORT_FILE             Path of the roster file (default: ./champ-rosters.txt)

Examples:
  %s                  Start server with default settings
  %s --port 3000      Start server on port 3000

Visit http://localhost:8080 after starting the server.
`, os.Args[0], os.Args[0], os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("champroll %s\n", version)
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)

	cfg := config.Load(*portFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := newStore(ctx, cfg)
	defer closeStore()

	rm := game.NewManager(store, champions.NewSampler())
	if cfg.ExportEnabled {
		rm.SetRecorder(game.NewFileExporter(cfg.ExportFile))
		zerologlog.Info().Str("file", cfg.ExportFile).Msg("roster export enabled")
	}
	go rm.RunSweeper(ctx, cfg.SweepInterval, cfg.SessionTTL)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpapi.AccessLog())

	httpapi.SetupRoutes(r, &httpapi.Handler{Manager: rm, PublicURL: cfg.PublicURL})
	sock := ws.New(rm)
	io := sock.Mount(r)
	defer io.Close()

	// Serve the form page for all other routes
	r.NoRoute(func(c *gin.Context) {
		staticserver.Handler().ServeHTTP(c.Writer, c.Request)
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		<-ctx.Done()
		zerologlog.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zerologlog.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zerologlog.Fatal().Err(err).Msg("server stopped")
	}
}

func newStore(ctx context.Context, cfg config.Config) (game.Store, func()) {
	if cfg.Store != "redis" {
		return game.NewMemoryStore(), func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":" + cfg.RedisPort,
		Password:     cfg.RedisPassword,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     100,
		MinIdleConns: 10,
		PoolTimeout:  30 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		zerologlog.Fatal().Err(err).Str("addr", client.Options().Addr).Msg("redis unreachable")
	}
	return game.NewRedisStore(client, cfg.SessionTTL), func() { _ = client.Close() }
}
