// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"urnav/internal/ai"
	"urnav/internal/config"
	httptransport "urnav/internal/http"
	"urnav/internal/infra"
	"urnav/internal/modules/chat"
	"urnav/internal/modules/itinerary"
	"urnav/internal/modules/planner"
	"urnav/internal/places"
)

func main() {
	// Local development loads secrets from .env; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var clientOpts []places.Option
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		ttl := time.Duration(cfg.Search.CacheTTLMins) * time.Minute
		clientOpts = append(clientOpts, places.WithCache(places.NewCache(redisClient, ttl)))
	}
	placesClient := places.NewClient(cfg.Search.BaseURL, cfg.Search.APIKey, clientOpts...)

	var provider ai.Provider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		provider = gemini
	} else {
		log.Print("GEMINI_API_KEY not set, falling back to keyword matching")
	}

	maxAge := time.Duration(cfg.SessionMaxAgeHours) * time.Hour

	resolver := planner.NewResolver(placesClient, provider, cfg.Search.DefaultRadiusM)
	itineraryStore := itinerary.NewStore()
	plannerSvc := planner.NewService(resolver, itineraryStore, maxAge)

	chatStore := chat.NewStore()
	chatHandler := chat.NewHandler(provider, placesClient, chatStore, maxAge)

	handler := httptransport.NewRouter(plannerSvc, chatHandler, chatStore, placesClient)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
