package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timesnake/internal/server"
	"github.com/matzehuels/timesnake/pkg/cache"
	"github.com/matzehuels/timesnake/pkg/pipeline"
)

type serveFlags struct {
	addr        string
	redisURL    string
	cachePrefix string
	noCache     bool
	timeout     time.Duration
}

// serveCommand creates the serve command, which runs the HTTP render server.
func (c *CLI) serveCommand() *cobra.Command {
	flags := serveFlags{
		addr:    server.DefaultAddr,
		timeout: server.DefaultRequestTimeout,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered timelines over HTTP",
		Long: `Serve rendered timelines over HTTP.

  GET  /healthz
  GET  /v1/timeline.{svg,png,pdf,json}?width=&track_spacing=
  POST /v1/render?format=svg    (chart as JSON, TOML or YAML)

Artifacts are cached in the local cache directory, or in Redis with --redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", flags.addr, "listen address")
	cmd.Flags().StringVar(&flags.redisURL, "redis", "", "Redis URL for the artifact cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&flags.cachePrefix, "cache-prefix", "", "namespace for cache keys in a shared backend")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", flags.timeout, "per-request render timeout")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, flags serveFlags) error {
	logger := loggerFromContext(ctx)

	var (
		backend cache.Cache
		err     error
	)
	switch {
	case flags.redisURL != "" && !flags.noCache:
		backend, err = cache.NewRedisCache(ctx, flags.redisURL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("using redis cache")
	default:
		backend, err = c.newCache(flags.noCache)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
	}

	var keyer cache.Keyer
	if flags.cachePrefix != "" {
		keyer = cache.NewScopedKeyer(nil, flags.cachePrefix)
	}

	runner := pipeline.NewRunner(backend, keyer, logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:           flags.addr,
		RequestTimeout: flags.timeout,
	}, runner, logger)
	return srv.ListenAndServe(ctx)
}
