package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/observability"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/server"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr        string
	redisURL    string
	mongoURI    string
	mongoDB     string
	cachePrefix string
	noCache     bool
	timeout     time.Duration
	maxBody     int64
}

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var o serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render pipeline over HTTP",
		Long: `Serve the layout and render pipeline over HTTP.

Endpoints:
  GET  /healthz
  GET  /version
  POST /v1/layout             tags or source options → layout document
  POST /v1/render/{format}    layout document → artifact
  POST /v1/generate/{format}  source options → artifact

By default results are cached in the local cache directory. With --redis or
--mongo the cache is shared through Redis or MongoDB instead.`,
		Example: `  tagcloud serve --addr :9000
  tagcloud serve --redis redis://localhost:6379/0
  tagcloud serve --mongo mongodb://localhost:27017 --cache-prefix prod:`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), o)
		},
	}

	cmd.Flags().StringVar(&o.addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&o.redisURL, "redis", "", "Redis URL for a shared cache, e.g. redis://localhost:6379/0")
	cmd.Flags().StringVar(&o.mongoURI, "mongo", "", "MongoDB URI for a shared cache, e.g. mongodb://localhost:27017")
	cmd.Flags().StringVar(&o.mongoDB, "mongo-db", appName, "MongoDB database for the shared cache")
	cmd.Flags().StringVar(&o.cachePrefix, "cache-prefix", "", "key prefix when sharing a cache backend")
	cmd.MarkFlagsMutuallyExclusive("redis", "mongo")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().DurationVar(&o.timeout, "timeout", server.DefaultTimeout, "per-request timeout")
	cmd.Flags().Int64Var(&o.maxBody, "max-body", server.DefaultMaxBodyBytes, "largest accepted request body in bytes")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, o serveOpts) error {
	runner, err := c.newServeRunner(ctx, o)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	observability.NewLogHooks(c.Logger).Register()
	defer observability.Reset()

	srv := server.New(runner, c.Logger, server.Config{
		Addr:         o.addr,
		MaxBodyBytes: o.maxBody,
		Timeout:      o.timeout,
	})

	printInfo("Listening on %s", StyleLink.Render("http://"+displayAddr(o.addr)))
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}
	printSuccess("Server stopped")
	return nil
}

// newServeRunner picks the cache backend for the server.
func (c *CLI) newServeRunner(ctx context.Context, o serveOpts) (*pipeline.Runner, error) {
	var (
		backend cache.Cache
		err     error
	)
	switch {
	case o.noCache || (o.redisURL == "" && o.mongoURI == ""):
		return c.newRunner(o.noCache)
	case o.redisURL != "":
		backend, err = cache.NewRedisCache(ctx, o.redisURL)
		c.Logger.Debug("using redis cache", "prefix", o.cachePrefix)
	default:
		backend, err = cache.NewMongoCache(ctx, o.mongoURI, o.mongoDB)
		c.Logger.Debug("using mongo cache", "db", o.mongoDB, "prefix", o.cachePrefix)
	}
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if o.cachePrefix != "" {
		keyer = cache.NewScopedKeyer(nil, o.cachePrefix)
	}
	return pipeline.NewRunner(backend, keyer, c.Logger), nil
}

// displayAddr turns a bare ":port" listen address into a clickable host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
