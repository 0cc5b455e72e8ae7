package database

import (
	"fmt"
	"log"

	"frolftracker/config"
	"frolftracker/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection selected by the configuration
// and migrates the models. Foreign keys are enforced before any operation is
// served: postgres always enforces them, sqlite through the DSN pragma.
func InitDB() {
	var dialector gorm.Dialector
	switch config.DatabaseDriver {
	case "sqlite":
		dialector = sqlite.Open(fmt.Sprintf("%s?_foreign_keys=on", config.SqlitePath))
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
			config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)
		dialector = postgres.Open(dsn)
	}

	if err := Connect(dialector); err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	logCounts()
}

// Connect opens the given dialector, migrates the models and installs the
// connection as the process-wide handle. TranslateError is enabled so that
// unique and foreign key violations surface as typed gorm errors.
func Connect(dialector gorm.Dialector) error {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Player{},
		&models.Course{},
		&models.Score{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	DB = db
	return nil
}

// logCounts logs the number of rows per table on startup
func logCounts() {
	var players, courses, scores int64
	DB.Model(&models.Player{}).Count(&players)
	DB.Model(&models.Course{}).Count(&courses)
	DB.Model(&models.Score{}).Count(&scores)
	log.Printf("database ready: %d players, %d courses, %d scores", players, courses, scores)
}
