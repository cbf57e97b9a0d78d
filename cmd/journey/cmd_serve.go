package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donorjourney/internal/logging"
	"donorjourney/internal/session"
	"donorjourney/internal/tui"
	"donorjourney/internal/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// sessionSweepInterval is how often idle web sessions are evicted.
const sessionSweepInterval = time.Minute

func (c *cli) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web app and JSON API",
		Long: `Serves the onboarding form, the personalized journey page, the NGO
dashboard with JSON and XLSX exports, and the JSON API under /api.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	gen, err := c.generator(ctx)
	if err != nil {
		return err
	}
	store := session.NewStore(gen, c.cfg.GetSessionTTL())
	srv, err := web.New(c.cfg.Server, gen, store)
	if err != nil {
		return err
	}

	c.logger.Info("Starting server",
		zap.String("addr", c.cfg.Server.Addr),
		zap.String("provider", c.cfg.LLM.Provider),
		zap.Int("campaigns", gen.Catalog().Len()))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error { return store.Run(ctx, sessionSweepInterval) })
	return g.Wait()
}

func (c *cli) onboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "onboard",
		Short: "Start the interactive onboarding wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			gen, err := c.generator(ctx)
			if err != nil {
				return err
			}
			logging.TUI("Wizard started")
			return tui.Run(ctx, session.NewController(gen))
		},
	}
}
