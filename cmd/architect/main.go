package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doffn/image-json-generator/internal/config"
	"github.com/doffn/image-json-generator/internal/server"
	"github.com/doffn/image-json-generator/pkg/genai"
	"github.com/doffn/image-json-generator/pkg/orchestrator"
)

func main() {
	var (
		addrFlag      = flag.String("addr", "", "HTTP listen address (overrides config)")
		configFlag    = flag.String("config", "", "YAML config file path")
		shutdownGrace = flag.Duration("grace", 5*time.Second, "Shutdown grace period")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addrFlag != "" {
		cfg.Listen = *addrFlag
	}
	if cfg.APIKey == "" {
		log.Printf("warning: no GOOGLE_API_KEY configured, generation requests will fail")
	}

	clientOptions := []genai.Option{
		genai.WithBaseURL(cfg.BaseURL),
		genai.WithImageModel(cfg.ImageModel),
		genai.WithTextModel(cfg.TextModel),
	}
	generator := orchestrator.New(orchestrator.WithClient(genai.New(clientOptions...)))

	httpServer := &http.Server{
		Addr:    cfg.Listen,
		Handler: server.New(generator, cfg.APIKey).Handler(),
	}

	log.Printf("listening on %s", cfg.Listen)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
