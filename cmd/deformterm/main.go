// Package main is the entry point for the deformo terminal frontend.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/deformo/internal/config"
	"github.com/Faultbox/deformo/internal/logger"
	"github.com/Faultbox/deformo/internal/term"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The screen owns stdout, so logs only go to the file (if any)
	if err := logger.Init(logger.ForFile(cfg.Logging.Level, cfg.Logging.LogFile, false)); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	t, err := term.New(cfg, nil, logger.Named("term"))
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Terminal error: %v\n", err)
		os.Exit(1)
	}

	runErr := t.Run()
	t.Close()
	if runErr != nil {
		logger.Error("run error", zap.Error(runErr))
		fmt.Fprintf(os.Stderr, "Run error: %v\n", runErr)
		os.Exit(1)
	}
}
