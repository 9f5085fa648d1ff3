package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/news-digest/internal/config"
	"github.com/jonathan/news-digest/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the digest pipeline once: collect, summarize, send",
	Long: `Runs one collect -> summarize -> deliver pass and exits. Scheduling is
external; invoke this from cron or a workflow runner once per desired interval.

Configuration is layered: built-in defaults, then an optional JSON config file,
then environment variables, then command-line flags.`,
	RunE: runDigestCmd,
}

var (
	runConfigPath string
	runFeeds      []string
	runQuery      string
	runMaxPerFeed int
	runDryRun     bool
	runVerbose    bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringArrayVar(&runFeeds, "feed", nil, "RSS feed URL (repeatable, replaces the default feed list)")
	runCommand.Flags().StringVarP(&runQuery, "query", "q", "", "News API search query")
	runCommand.Flags().IntVar(&runMaxPerFeed, "max-per-feed", 0, "Maximum entries taken from each feed (0 = default)")
	runCommand.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the digest instead of emailing it")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

func runDigestCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := logrus.NewEntry(logrus.StandardLogger())

	// Step 1: defaults, then config file overrides
	cfg := config.Default()
	if runConfigPath != "" {
		fileCfg, err := config.Load(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.Merge(fileCfg)
	}

	// Step 2: environment overrides (credentials and delivery settings)
	cfg.ApplyEnv()

	// Step 3: CLI flag overrides, only where explicitly set
	if cmd.Flags().Changed("feed") {
		cfg.Feeds = runFeeds
	}
	if cmd.Flags().Changed("query") {
		cfg.NewsQuery = runQuery
	}
	if cmd.Flags().Changed("max-per-feed") {
		cfg.MaxPerFeed = runMaxPerFeed
	}
	if runDryRun {
		cfg.DryRun = true
	}
	if runVerbose {
		cfg.Verbose = true
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Step 4: validate formats; missing credentials are warnings only
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, warning := range cfg.Warnings() {
		logger.Warn(warning)
	}

	return pipeline.Run(ctx, pipeline.Options{
		Config: cfg,
		Logger: logger,
	})
}
