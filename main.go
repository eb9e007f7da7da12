package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sociai/config"
	"sociai/database"
	"sociai/fixtures"
	"sociai/handlers"
	"sociai/logging"
	"sociai/routes"
	"sociai/services"
	"sociai/websocket"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	port     string
	logLevel string
	tone     string
	hashtags []string
)

var rootCmd = &cobra.Command{
	Use:   "sociai",
	Short: "SociAI mock social API",
	Long: `SociAI serves the mock social-media API behind the SociAI dashboard:
feed, engagement, communities and their events, content ideas and
templates, content generation and analytics over in-memory data seeded
from the bundled fixtures.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Print the seed data as JSON",
	Long:  "Print the seed data as JSON so the dashboard can use the same fixtures as its offline fallback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		seed, err := fixtures.Load(cfg.FixturesDir, time.Now())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(seed)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Render a post from the content templates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := services.Generate(services.GenerateRequest{
			Prompt:   args[0],
			Tone:     tone,
			Hashtags: hashtags,
		}, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Content)
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d words, %s read\n", out.Metadata.WordCount, out.Metadata.EstimatedReadTime)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
		cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	}
	generateCmd.Flags().StringVarP(&tone, "tone", "t", "casual", "professional, casual, creative or educational")
	generateCmd.Flags().StringSliceVar(&hashtags, "hashtag", nil, "hashtag to append (repeatable)")

	rootCmd.AddCommand(serveCmd, fixturesCmd, generateCmd)
}

func runServer(ctx context.Context) error {
	cfg := config.Load()
	if port != "" {
		cfg.Port = port
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, err := logging.New(cfg.LogLevel, !cfg.Release())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Release() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	seed, err := fixtures.Load(cfg.FixturesDir, time.Now())
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}
	store := database.New(seed)
	logger.Info("store seeded",
		zap.Int("posts", len(seed.Posts)),
		zap.Int("communities", len(seed.Communities)),
		zap.Int("ideas", len(seed.Ideas)),
	)

	hub := websocket.NewManager(logger.Named("ws"), cfg.AllowedOrigins)
	h := handlers.New(store, hub, logger, handlers.Options{
		GenerateDelay:   cfg.GenerateDelay,
		EngagementDelay: cfg.EngagementDelay,
	})
	router := routes.SetupRouter(cfg, h, hub, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", server.Addr), zap.String("mode", gin.Mode()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
