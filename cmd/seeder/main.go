package main

import (
	"log"

	"github.com/xenia-tech/xenia-backend/internal/config"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/internal/seeds"
	"github.com/xenia-tech/xenia-backend/internal/services"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Order{},
		&models.Registration{},
		&models.OrderCounter{},
		&models.AdminAction{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	if err := services.EnsureOrderCounter(database.DB); err != nil {
		log.Fatalf("❌ Failed to seed order counter: %v", err)
	}

	if _, err := seeds.GetOrCreateAdminUser(); err != nil {
		log.Fatalf("❌ Failed to seed admin user: %v", err)
	}
	seeds.SeedEvents()

	log.Println("✅ Seeding Complete!")
}
