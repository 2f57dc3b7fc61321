package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/webdav-client/internal/client"
	"github.com/webdav-client/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	dav, err := client.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create client: %v", err)
	}

	if err := newRootCommand(dav, cfg, logger).Execute(); err != nil {
		os.Exit(1)
	}
}
