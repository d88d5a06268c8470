package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/bistro-pos/config"
	"github.com/yeremiapane/bistro-pos/database"
	"github.com/yeremiapane/bistro-pos/models"
	"github.com/yeremiapane/bistro-pos/router"
	"github.com/yeremiapane/bistro-pos/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seed(db)

	r := router.SetupRouter(db)
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := config.Port()
	utils.InfoLogger.Printf("Listening on port %s (platform=%s)", port, os.Getenv("POS_PLATFORM"))
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.CodeEntry{},
		&models.CodeTranslation{},
		&models.User{},
		&models.Table{},
		&models.Category{},
		&models.Product{},
		&models.Variant{},
		&models.Extra{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemExtra{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

func seed(db *gorm.DB) {
	if err := database.SeedCodeEntries(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed code entries: %v", err)
	}
	if err := database.SeedDefaultAdmin(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed default admin: %v", err)
	}
	if err := database.SeedTables(db, 8); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed tables: %v", err)
	}
}
