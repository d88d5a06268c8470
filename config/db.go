package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database sesuai platform flag. Ini SATU-SATUNYA
// tempat yang bercabang pada platform: "desktop" memakai sqlite lokal,
// "server" (default) memakai mysql. Di atas *gorm.DB semua repository
// berperilaku identik apapun store di bawahnya.
func InitDB() (*gorm.DB, error) {
	platform := os.Getenv("POS_PLATFORM")

	switch platform {
	case "desktop":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "bistro-pos.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	case "server", "":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required when POS_PLATFORM=server")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown POS_PLATFORM %q (expected desktop or server)", platform)
	}
}
