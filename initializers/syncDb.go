package initializers

import (
	"log"

	"github.com/decorhaven/decorhaven-api/models"
	"github.com/decorhaven/decorhaven-api/storage"
)

func SyncDatabase() {
	if DB == nil {
		return
	}
	if err := storage.AutoMigrate(DB); err != nil {
		log.Fatalf("Failed to migrate products table: %v", err)
	}
	if err := DB.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}
	log.Println("Database synced successfully.")
}
