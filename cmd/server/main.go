package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/khelghar/rajamantri/internal/common/clock"
	"github.com/khelghar/rajamantri/internal/common/uuid"
	"github.com/khelghar/rajamantri/internal/handlers/web"
	roomRepo "github.com/khelghar/rajamantri/internal/repositories/room"
	sessionRepo "github.com/khelghar/rajamantri/internal/repositories/session"
	gameService "github.com/khelghar/rajamantri/internal/services/game"
	roomService "github.com/khelghar/rajamantri/internal/services/room"
	"github.com/khelghar/rajamantri/internal/shuffle"
)

const requestTimeout = 10 * time.Second

type config struct {
	bind          string
	port          int
	baseURL       string
	redisAddr     string
	redisPassword string
	redisDB       int
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("RAJAMANTRI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "rajamantri",
		Short:         "Realtime server for the raja-mantri-chor-sipahi card game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: RAJAMANTRI_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: RAJAMANTRI_PORT)")
	fs.StringVar(&cfg.baseURL, "base-url", "http://localhost:8080", "externally visible URL, used in QR join links (env: RAJAMANTRI_BASE_URL)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: RAJAMANTRI_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: RAJAMANTRI_REDIS_PASSWORD)")
	fs.IntVar(&cfg.redisDB, "redis-db", 0, "redis database number (env: RAJAMANTRI_REDIS_DB)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return cmd
}

func run(ctx context.Context, cfg *config) error {
	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create room repository: %w", err)
	}

	// Initialize the websocket hub; it doubles as the broadcaster
	hub := web.NewHub()

	// Initialize services
	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo: sessions,
		Clock:       clock.New(),
		Shuffler:    shuffle.New(&shuffle.Config{}),
		Broadcaster: hub,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	roomSvc, err := roomService.New(&roomService.Config{
		RoomRepo:      rooms,
		GameService:   gameSvc,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create room service: %w", err)
	}

	handler, err := web.New(&web.Config{
		RoomService: roomSvc,
		GameService: gameSvc,
		Hub:         hub,
		BaseURL:     cfg.baseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create web handler: %w", err)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.bind, strconv.Itoa(cfg.port)),
		Handler:           handler.Router(),
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       requestTimeout,
		ReadHeaderTimeout: requestTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal to gracefully shut down
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errs:
		return err
	case <-sc:
	}

	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg := &config{}
	if err := newCmd(cfg).Execute(); err != nil {
		log.Fatal(err)
	}
}
