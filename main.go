package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sanashahul/GamiSMS-sub000/internal/config"
	"github.com/sanashahul/GamiSMS-sub000/internal/geo"
	"github.com/sanashahul/GamiSMS-sub000/internal/i18n"
	"github.com/sanashahul/GamiSMS-sub000/internal/resources"
	"github.com/sanashahul/GamiSMS-sub000/internal/routes"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
)

func main() {
	// Load environment variables; a missing .env just means plain env vars
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize the blob store backend
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}

	// Static geocoder backs manual ZIP entry when device location is off;
	// the place search stays a no-op until a real provider is plugged in
	geocoder := geo.NewStaticGeocoder(resources.SampleZipTable())
	directory := resources.NewSampleDirectory(geocoder)
	places := geo.NoopPlaceSearch{}

	// Translation catalog; missing files degrade to English fallback
	catalog := i18n.Load(cfg.TranslationsDir, cfg.DefaultLanguage)

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, store, directory, places, catalog, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMySQL:
		return storage.NewSQLStore(cfg.Storage.Database.DSN)
	case config.DriverMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.Storage.DataDir)
	}
}
