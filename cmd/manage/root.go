package main

import (
	"github.com/spf13/cobra"

	"blog-service/internal/infrastructure/config"
	"blog-service/internal/infrastructure/logger"
)

var rootCmd = &cobra.Command{
	Use:          "manage [command] [flags]",
	Short:        "Administrative tasks for the blog service",
	SilenceUsage: true,
}

// setup loads configuration the same way the server does.
func setup() (*config.Config, *logger.Logger) {
	cfg := config.MustLoad()
	return cfg, logger.New(cfg.Env)
}
