package main

import (
	"flag"
	"log/slog"
	"net/http"

	"github.com/healthplate/healthplate/internal/app"
	"github.com/healthplate/healthplate/internal/config"
	"github.com/healthplate/healthplate/internal/logger"
	"github.com/healthplate/healthplate/internal/routes"
)

func main() {
	importDir := flag.String("import", "", "import markdown content from the given directory and exit")
	flag.Parse()

	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	if *importDir != "" {
		err = app.ImporterService.ImportDir(*importDir)
		if err != nil {
			slog.Error("content import failed", "error", err, "dir", *importDir)
			panic(err)
		}
		slog.Info("content import complete", "dir", *importDir)
		return
	}

	handler := routes.SetupRoutes(app)
	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)

	err = http.ListenAndServe(":"+cfg.Port, handler)
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
