package storage

import (
	"fmt"
	"log/slog"

	slogGorm "github.com/orandin/slog-gorm"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"github.com/xfwduke/blueking-dbm/pkg/config"
	"github.com/xfwduke/blueking-dbm/pkg/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase connects to PostgreSQL and migrates the schema of the clone history.
func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger: slogGorm.New(slogGorm.WithHandler(logger.Handler())),
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, fmt.Errorf("failed to instrument database: %v", err)
	}

	err = db.AutoMigrate(&model.CloneRecord{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %v", err)
	}

	return db, nil
}
