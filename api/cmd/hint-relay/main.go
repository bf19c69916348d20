package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hint-relay/api/internal/assist"
	"hint-relay/api/internal/config"
	"hint-relay/api/internal/handle"
	"hint-relay/api/internal/httpserver"
	"hint-relay/api/internal/llm/gemini"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	setupLogging(cfg)
	gin.SetMode(cfg.GinMode)

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("server")
	}
	log.Info("stopped")
}

func run(cfg *config.Config) error {
	engine, err := gemini.New(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.WithError(err).Warn("gemini client close")
		}
	}()

	h := handle.New(assist.New(engine, cfg.ModelTimeout), config.ServiceName)
	router := httpserver.NewRouter(h, config.ServiceName)

	log.WithFields(log.Fields{
		"service":       config.ServiceName,
		"addr":          cfg.Addr(),
		"engine":        engine.Name(),
		"model":         engine.GetModel(),
		"model_timeout": cfg.ModelTimeout.String(),
	}).Info("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpserver.Run(ctx, cfg.Addr(), router, cfg.ShutdownTimeout)
}

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetHandler(json.New(os.Stderr))
	} else {
		log.SetHandler(cli.New(os.Stderr))
	}
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
