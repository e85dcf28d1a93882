package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/plgd-dev/notification2/notification2/service"
	"github.com/plgd-dev/notification2/pkg/config"
	"github.com/plgd-dev/notification2/pkg/log"
)

func main() {
	var cfg service.Config
	if err := config.LoadAndValidateConfig(&cfg); err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	logger, err := log.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("cannot create logger: %v", err)
	}
	log.Set(logger)
	log.Infof("config: %v", cfg.String())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	s, err := service.New(ctx, cfg, logger, nil)
	if err != nil {
		log.Fatalf("cannot create service: %v", err)
	}
	if err = s.Serve(ctx); err != nil {
		log.Errorf("cannot serve service: %v", err)
		_ = logger.Sync()
		cancel()
		os.Exit(1)
	}
	_ = logger.Sync()
}
