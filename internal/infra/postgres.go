package infra

import (
	"fmt"
	"tripplanner/internal/models/db_models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitPostgresql opens the archive database. An empty dsn disables the archive
// and returns a nil handle.
func InitPostgresql(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		logger.Info("POSTGRES_URL not set, itinerary archive disabled")
		return nil, nil
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := connectionPool.AutoMigrate(&db_models.Itinerary{}); err != nil {
		return nil, fmt.Errorf("error migrating itinerary archive: %w", err)
	}

	logger.Info("PostgreSQL itinerary archive ready")
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("error closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed successfully")
	}
}
