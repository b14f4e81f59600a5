package main

import (
	"context"
	"log"

	"photo2text-backend/internal/config"
	"photo2text-backend/internal/extractions"
	"photo2text-backend/internal/ocr"
	"photo2text-backend/internal/server"
	"photo2text-backend/internal/storage/db"
	"photo2text-backend/internal/storage/files"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	database, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database, cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	store, err := files.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload dir: %v", err)
	}

	engine := ocr.NewTesseract(cfg.OCRLanguage)
	svc := extractions.NewService(&extractions.SQLRepo{DB: database}, store, engine, cfg.ExtractionMode, cfg.AllowedExtensions)
	handler := extractions.NewHandler(svc, cfg.MaxUploadBytes)

	r := server.New(cfg, handler)
	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (mode=%s)", addr, cfg.ExtractionMode)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
