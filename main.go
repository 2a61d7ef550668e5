package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"facelens/ai"
	"facelens/config"
	"facelens/database"
	handler "facelens/handlers"
	"facelens/models"
	"facelens/router"
	"facelens/storage"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB limit

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var records database.RecordStore
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db, &models.Analysis{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		records = database.NewAnalysisRepository(db)

		defer func() {
			if err := database.Close(db); err != nil {
				fmt.Printf("Error closing the database connection %v", err)
			}
		}()
	} else {
		log.Println("DATABASE_URL not set, running without result persistence")
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create blob store: %v", err)
	}
	// The public-URL GCS variant needs allUsers read access on the bucket.
	if gcsStore, ok := store.(*storage.GCSStore); ok && !cfg.GCSSignedURLs {
		if err := gcsStore.MakeBucketPublic(ctx); err != nil {
			log.Printf("Failed to make bucket public: %v", err)
		}
	}

	describer, err := ai.NewGemini(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: maxUploadSize,
	})

	h := handler.NewAnalyzeHandler(store, records, describer)

	uploadsDir := ""
	if cfg.StorageBackend == config.BackendDisk {
		uploadsDir = cfg.UploadsPath
	}
	router.SetupRoutes(app, h, uploadsDir)

	fmt.Println("Server is listening at the port " + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
