package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devsync/config"
)

// Connect opens the configured backend. Redshift speaks the postgres
// wire protocol, so the postgres driver covers it.
func Connect(cfg config.DB) (*gorm.DB, error) {
	opts := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch cfg.Type {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Path), opts)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), opts)
	case "redshift":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=require", cfg.Host, cfg.Port, cfg.User, cfg.Pass, cfg.Name)
		return gorm.Open(postgres.Open(dsn), opts)
	default:
		return nil, fmt.Errorf("unsupported db type %q", cfg.Type)
	}
}
