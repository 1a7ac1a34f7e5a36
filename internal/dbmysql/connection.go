package dbmysql

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ripple/internal/config"
)

// NewMySQL returns a GORM DB instance connected to MySQL
func NewMySQL(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DSN()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("connected to MySQL", "host", cfg.Database.Host, "db", cfg.Database.DatabaseName)
	return db, nil
}

// Migrate creates or updates every table the core owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Friendship{},
		&Conversation{},
		&Membership{},
		&Message{},
	)
}
