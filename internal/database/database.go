package database

import (
	"fmt"
	"log"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/config"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the embedded sqlite store at the configured path.
func Connect(cfg *config.Config) error {
	gormConfig := &gorm.Config{}
	if cfg.LogQueries {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite ships with foreign key enforcement off.
	if err := DB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	log.Println("Database connection established")
	return nil
}

// Migrate provisions the schema. AutoMigrate is idempotent, so this is safe
// to run on every startup.
func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Season{},
		&models.Match{},
		&models.BattingStat{},
		&models.BowlingStat{},
		&models.OverStat{},
		&models.ClubMembership{},
		&models.ResetToken{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
