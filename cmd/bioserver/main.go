package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"bio-scraper/pkg/config"
	"bio-scraper/pkg/logging"
	"bio-scraper/pkg/server"
)

func main() {
	cfg := config.LoadOrDefault()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	srv := server.New(cfg, logger)
	logger.Info("serving", zap.String("port", cfg.Port))
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
