package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB opens the MySQL connection. The handle is returned rather than
// held here; the composition root owns its lifecycle and passes it to the
// repositories explicitly.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	Logger.Info("Database connected")
	return db, nil
}
