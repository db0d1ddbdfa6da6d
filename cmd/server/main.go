package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cochlearspare/backend/config"
	httpDelivery "github.com/cochlearspare/backend/internal/delivery/http"
	"github.com/cochlearspare/backend/internal/domain"
	"github.com/cochlearspare/backend/internal/infrastructure/catalog"
	"github.com/cochlearspare/backend/internal/infrastructure/gemini"
	"github.com/cochlearspare/backend/internal/infrastructure/geoip"
	"github.com/cochlearspare/backend/internal/infrastructure/sessions"
	"github.com/cochlearspare/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting CochlearSpare Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Session TTL: %s", cfg.Session.TTL)

	// Static catalog, loaded once
	store := catalog.NewStore()
	log.Printf("Catalog loaded: %d products, %d devices", len(store.Products()), len(store.Devices()))

	// Session store with idle expiry
	sessionStore := sessions.NewStore(cfg.Session.TTL)
	defer sessionStore.Close()

	// Geolocation collaborator (optional)
	var geo domain.GeoLocator
	if cfg.GeoIP.Enabled {
		geoClient := geoip.NewClient(cfg.GeoIP.BaseURL)
		if cfg.Server.Environment == "development" {
			geoClient.SetDebug(true)
		}
		geo = geoClient
		log.Printf("GeoIP configured: %s", cfg.GeoIP.BaseURL)
	} else {
		log.Printf("GeoIP disabled - ship-to display stays at %q", domain.DefaultCountry)
	}

	// Text-generation collaborator (optional - assistant stays inert without a key)
	var generator domain.TextGenerator
	if cfg.Gemini.APIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, usecase.AssistantSystemInstruction)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		generator = client
		log.Printf("Gemini configured: model=%s (key: %s...)", cfg.Gemini.Model, keyPrefix(cfg.Gemini.APIKey))
	} else {
		log.Printf("WARNING: Gemini API key not configured - assistant will not answer")
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(store)
	sessionService := usecase.NewSessionService(sessionStore, store, geo, usecase.AssistantGreeting)
	assistantService := usecase.NewAssistantService(generator)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(store, catalogService, sessionService, assistantService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, sessionService)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// keyPrefix returns the first characters of a credential for startup logs,
// never the whole key
func keyPrefix(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
