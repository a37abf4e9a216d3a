package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gardenhub/garden-api/internal/config"
	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/store"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		conf.Host, conf.User, conf.Password, conf.DBName, conf.Port, conf.SSLMode)

	return open(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return open(url)
}

func open(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = InitTables(gormDB); err != nil {
		return nil, fmt.Errorf("db.InitTables -> %w", err)
	}

	return gormDB, nil
}

func InitTables(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&domain.User{},
		&domain.Plot{},
		&domain.Activity{},
		&domain.Resource{},
		&domain.Event{},
		&store.EmailClaim{},
	)
}
