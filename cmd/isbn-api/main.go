package main

import (
	"os"

	"isbnsplit/internal/isbn/events"
	"isbnsplit/internal/isbn/handler"
	"isbnsplit/internal/isbn/service"
	"isbnsplit/internal/isbn/validator"
	"isbnsplit/pkg/app"
	"isbnsplit/pkg/config"
)

const serviceName = "isbn-api"

func main() {
	cfg := config.Load(serviceName, os.Stdout)
	cfg.Log.Info("Starting ISBN decomposition service")

	ev, err := events.Setup(cfg, serviceName)
	if err != nil {
		cfg.Log.Fatal("Failed to set up event publishing", "error", err)
	}

	application := app.NewApplication()

	var publisher service.EventPublisher
	var readiness handler.ReadinessCheck
	if ev != nil {
		publisher = ev.Publisher
		readiness = ev.Producer.Ping
		application.OnShutdown(ev)
	}

	isbnValidator := validator.NewISBNValidator(cfg.Log)
	decomposer := service.NewDecomposerService(isbnValidator, publisher, cfg.Log)

	application.SetApp(
		cfg,
		handler.NewHealthHandler(readiness, cfg.Log),
		handler.NewISBNHandler(decomposer, isbnValidator, cfg.MaxLineLength, cfg.Log),
	)
	application.Run()
}
