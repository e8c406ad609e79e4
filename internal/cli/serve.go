package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorsmith/internal/server"
	"github.com/matzehuels/floorsmith/pkg/observability"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		envFile string
		addr    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the floor plan HTTP API",
		Long: `Serve the floor plan HTTP API.

Settings are read from a .env file and FLOORSMITH_* environment variables:

  FLOORSMITH_ADDR         listen address (default :8080)
  FLOORSMITH_STORE        project store: memory (default), sqlite, mongo
  FLOORSMITH_SQLITE_PATH  sqlite database file
  FLOORSMITH_MONGO_URI    mongodb connection string
  FLOORSMITH_MONGO_DB     mongodb database name
  FLOORSMITH_REDIS_ADDR   redis address for the shared plan cache
  FLOORSMITH_CACHE_SIZE   in-memory cache entries when redis is not set

Flags override the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if backend != "" {
				cfg.Store = backend
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	cmd.Flags().StringVar(&backend, "store", "", "project store: memory, sqlite, mongo")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg server.Config) error {
	logger := loggerFromContext(ctx)

	hooks := observability.NewLogHooks(logger.WithPrefix("hooks"))
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetEditHooks(hooks)

	srv, err := server.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Warn("close server", "err", err)
		}
	}()

	printInfo("Serving on %s", StyleHighlight.Render(cfg.Addr))
	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
