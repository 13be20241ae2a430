// Package main is the entry point for the panorama viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/panoview/internal/config"
	"github.com/Faultbox/panoview/internal/imageio"
	"github.com/Faultbox/panoview/internal/logger"
	"github.com/Faultbox/panoview/internal/viewer"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Sugar.Debugf("config: %+v", cfg)

	if config.WriteConfigRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to write config", zap.Error(err))
			return 1
		}
		logger.Info("config written", zap.String("path", path))
		return 0
	}

	path := config.ImagePath()
	if path == "" {
		path, err = pickImage()
		if errors.Is(err, dialog.ErrCancelled) {
			logger.Info("no image selected")
			return 0
		}
		if err != nil {
			logger.Error("file dialog failed", zap.Error(err))
			return 1
		}
	}

	v, err := viewer.New(cfg, path)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return 1
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}

// pickImage shows the native open dialog restricted to panorama formats.
func pickImage() (string, error) {
	return dialog.File().
		Title("Select 360 Image").
		Filter("360 Images", imageio.DialogExtensions...).
		Load()
}
