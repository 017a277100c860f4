package cli

import (
	"context"
	"io"
	nethttp "net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"compound-interest/config"
	httpLayer "compound-interest/http"
	"compound-interest/logger"
	"compound-interest/repository"
	"compound-interest/service"
)

func newServerCommand() *cobra.Command {
	var port uint16

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = int(port)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			log := logger.New(logger.Config{
				Level:  cfg.LogLevel,
				Pretty: cfg.LogPretty,
				Out:    cmd.ErrOrStderr(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, log)
		},
	}

	cmd.Flags().Uint16VarP(&port, "port", "p", 8080, "The port to run the server on")

	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	handler, cleanup := newServerHandler(cfg, log)
	defer cleanup()

	return httpLayer.NewServer(cfg.Port, handler, log).Run(ctx)
}

// newServerHandler assembles the HTTP stack. cleanup releases the cache
// connection and the rate limiter.
func newServerHandler(cfg *config.Config, log zerolog.Logger) (nethttp.Handler, func()) {
	var cache repository.CacheRepository
	var closers []io.Closer

	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable, projections will be recomputed")
		}
		cache = redisCache
		closers = append(closers, redisCache)
	} else {
		memoryCache := repository.NewMemoryCache()
		cache = memoryCache
		closers = append(closers, memoryCache)
	}

	projectionService := service.NewProjectionService(cache, cfg.CacheTTL, cfg.MaxYears, log)
	handler := httpLayer.NewCompoundInterestHandler(projectionService, log)

	var limiter *httpLayer.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Handler:        handler,
		Limiter:        limiter,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustProxy:     cfg.TrustProxy,
		Log:            log,
	})

	cleanup := func() {
		if limiter != nil {
			limiter.Stop()
		}
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Warn().Err(err).Msg("Error closing cache")
			}
		}
	}

	return router, cleanup
}
