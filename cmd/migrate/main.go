package main

import (
	"log"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/config"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/model"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate surveys and messages
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
