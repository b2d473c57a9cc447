package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/signdetect-go/app"
	"github.com/soocke/signdetect-go/cmdline"
	"github.com/soocke/signdetect-go/config"
)

func main() {
	if err := cmdline.New(run, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "signdetect:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, cfgPath string, loadErr error) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger, closer := NewLogger(level, cfg.LogFile)
	defer closer.Close()
	if loadErr != nil {
		logger.Warn("config problems, continuing with repaired values", "path", cfgPath, "error", loadErr)
	}

	application := app.NewApp("Sign Language Detection", 960, 720, cfg, cfgPath, logger)
	application.Start()
	return nil
}
