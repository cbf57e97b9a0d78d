package main

import (
	"fmt"
	"os"
	"path/filepath"

	"donorjourney/internal/config"
	"donorjourney/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries the global flags and the state PersistentPreRunE resolves.
type cli struct {
	// Global flags
	configPath string
	envFile    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "journey",
		Short: "Personalized donor journeys for Singapore NGO campaigns",
		Long: `journey turns a donor's onboarding answers into a personalized giving
journey: recommended campaigns from the catalog, four donation tiers scaled to
the donor's monthly capacity, and a four-week communication plan.

Run "journey serve" for the web app or "journey onboard" for the terminal wizard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "journey.yaml", "Config file")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Dotenv file loaded before the config")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		c.serveCmd(),
		c.onboardCmd(),
		c.generateCmd(),
		c.promptCmd(),
		c.catalogCmd(),
		c.dashboardCmd(),
		c.configCmd(),
		c.versionCmd(),
	)
	return root
}

// init loads .env and the config file, then installs the logger.
func (c *cli) init(cmd *cobra.Command) error {
	if err := config.LoadEnv(c.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	opts := logging.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Categories: cfg.Logging.Categories,
	}
	if c.verbose {
		opts.Level = "debug"
	}
	switch {
	case cfg.Logging.File != "":
		opts.OutputPaths = []string{cfg.Logging.File}
	case cmd.Name() == "onboard":
		// The wizard owns the terminal.
		opts.OutputPaths = []string{filepath.Join(os.TempDir(), "donorjourney.log")}
	}

	c.logger, err = logging.Initialize(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logging.Boot("Config resolved: provider=%s model=%s catalog=%q", cfg.LLM.Provider, cfg.LLM.Model, cfg.Catalog.Path)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
