package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/server"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing CV sessions, AI assists, and HTML preview.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	// The flag wins over the config file only when set explicitly.
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("CVBUILDER_API_KEY environment variable is required")
	}

	llmCfg := llm.DefaultConfig()
	if cfg.BaseURL != "" {
		llmCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}

	client, err := llm.NewClient(llmCfg, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}

	var sessionTTL time.Duration
	if cfg.SessionTTL != "" {
		sessionTTL, err = time.ParseDuration(cfg.SessionTTL)
		if err != nil {
			return fmt.Errorf("invalid session_ttl %q: %w", cfg.SessionTTL, err)
		}
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		Client:     client,
		SessionTTL: sessionTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
