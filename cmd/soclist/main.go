// Package main provides the soclist binary entry point.
// Soclist lists the SoC models known for an accelerator vendor and
// highlights candidates matching configured name patterns.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/soclist/config"
	"github.com/c360studio/soclist/filter"
	"github.com/c360studio/soclist/lister"
	"github.com/c360studio/soclist/soc"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "soclist"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		vendor     string
		matches    []string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "soclist",
		Short: "List accelerator SoC models and filter candidates",
		Long: `Soclist prints every SoC model name in a vendor's catalog, one per
line, followed by a single "candidates:" line holding the subset of
names that match the configured case-insensitive substring patterns.

Output goes to stdout; diagnostics go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, vendor, matches, logLevel)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor catalog to list (default from config)")
	cmd.Flags().StringArrayVarP(&matches, "match", "m", nil, "Candidate pattern, repeatable (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	// Vendors command
	cmd.AddCommand(&cobra.Command{
		Use:   "vendors",
		Short: "List known vendor keys",
		Run: func(cmd *cobra.Command, args []string) {
			for _, v := range soc.Vendors() {
				fmt.Println(v)
			}
		},
	})

	return cmd
}

func run(configPath, vendor string, matches []string, logLevel string) error {
	// Configure logging
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags take precedence over config layers
	if vendor != "" {
		cfg.Catalog.Vendor = vendor
	}
	if len(matches) > 0 {
		cfg.Filter.Match = matches
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve the vendor catalog
	catalog, err := soc.ForVendor(cfg.Catalog.Vendor)
	if err != nil {
		return err
	}

	preds, err := filter.NewPredicates(cfg.Filter.Match...)
	if err != nil {
		return fmt.Errorf("build predicates: %w", err)
	}

	logger.Debug("soclist ready",
		"version", Version,
		"vendor", catalog.Vendor(),
		"models", catalog.Len())

	return lister.New(catalog, logger).Run(os.Stdout, preds)
}

// loadConfig loads from an explicit path when given, otherwise through the
// layered loader (defaults, user config, project config).
func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.NewLoader(logger).Load()
}
