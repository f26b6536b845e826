package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtracker/internal/config"
	"github.com/jonathan/jobtracker/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API on the configured port and shuts down gracefully on SIGINT/SIGTERM.

Configuration comes from environment variables (PORT, DATABASE_URL, ALLOW_ORIGIN,
FETCH_TIMEOUT_SECONDS, AUTH_SECRET, ADMIN_EMAIL, ADMIN_PASSWORD_HASH), optionally
seeded from a JSON file via --config. Flags override both.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by env and flags)")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (overrides PORT)")

	rootCmd.AddCommand(serveCommand)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadFile(serveConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if servePort != 0 {
		merged.Port = servePort
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabaseURL:  cfg.DatabaseURL,
		AllowOrigin:  cfg.AllowOrigin,
		FetchTimeout: cfg.FetchTimeoutDuration(),
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
