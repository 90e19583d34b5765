package database

import (
	"fmt"
	"time"

	"kinbea-inventory/internal/config"
	"kinbea-inventory/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectAttempts = 5

// Connect opens the store and syncs the schema. It retries a few times so
// the server survives the database coming up after it does.
func Connect(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}

	var db *gorm.DB
	var err error
	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(dialector(cfg), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})
		if err == nil {
			break
		}
		log.WithFields(logrus.Fields{
			"attempt": i + 1,
			"driver":  cfg.DBDriver,
		}).Warnf("failed to connect to database, retrying in 2s: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database after %d attempts: %w", connectAttempts, err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("sync schema: %w", err)
	}

	log.WithField("driver", cfg.DBDriver).Info("connected to database")
	return db, nil
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == "sqlite" {
		return sqlite.Open(cfg.DBDSN)
	}
	return mysql.Open(cfg.DBDSN)
}

// Migrate creates the four tables if absent. No other schema management
// exists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.SoldItem{},
		&models.Received{},
	)
}
