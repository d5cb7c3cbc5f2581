package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/supthawee/farmgate-api/internal/config"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Operator account
		&entity.User{},

		// Master data
		&entity.Farmer{},
		&entity.Employee{},
		&entity.Product{},
		&entity.ProductPrice{},
		&entity.CarLicense{},
		&entity.SplitDefault{},

		// Transactions
		&entity.TransactionGroup{},
		&entity.TransactionLine{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the operator account on first run when configured
// via environment variables
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	username := viper.GetString("OPERATOR_USERNAME")
	password := viper.GetString("OPERATOR_PASSWORD")
	name := viper.GetString("OPERATOR_NAME")

	if username != "" && password != "" {
		var existing entity.User
		if err := db.Where("username = ?", username).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash operator password: %v", err)
			} else {
				if name == "" {
					name = "Operator"
				}
				operator := entity.User{
					Name:     name,
					Username: username,
					Password: string(hashedPassword),
				}
				if err := db.Create(&operator).Error; err != nil {
					log.Printf("Warning: failed to create operator user: %v", err)
				} else {
					log.Printf("Operator user created: %s", username)
				}
			}
		} else {
			log.Printf("Operator user already exists: %s", username)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
