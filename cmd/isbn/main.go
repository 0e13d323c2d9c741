package main

import (
	"context"
	"os"

	"isbnsplit/internal/console"
	"isbnsplit/internal/isbn/events"
	"isbnsplit/internal/isbn/service"
	"isbnsplit/internal/isbn/validator"
	"isbnsplit/pkg/config"
	"isbnsplit/pkg/logger"
)

const serviceName = "isbn"

func main() {
	os.Exit(run())
}

func run() int {
	// stdout carries the prompt and the result; logs stay quiet on stderr
	// unless asked for.
	setDefaultEnv(config.EnvLogLevel, logger.WARN)
	setDefaultEnv(config.EnvLogFormat, logger.TEXT)

	cfg := config.Load(serviceName, os.Stderr)

	ev, err := events.Setup(cfg, serviceName)
	if err != nil {
		cfg.Log.Fatal("Failed to set up event publishing", "error", err)
	}

	var publisher service.EventPublisher
	if ev != nil {
		publisher = ev.Publisher
		defer func() {
			if err := ev.Close(); err != nil {
				cfg.Log.Error("Failed to close event producer", "error", err)
			}
		}()
	}

	session := &console.Session{
		In:        os.Stdin,
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		MaxLength: cfg.MaxLineLength,
		Service:   service.NewDecomposerService(validator.NewISBNValidator(cfg.Log), publisher, cfg.Log),
		Log:       cfg.Log,
	}

	return session.Run(context.Background())
}

func setDefaultEnv(key, value string) {
	if _, ok := os.LookupEnv(key); !ok {
		_ = os.Setenv(key, value)
	}
}
