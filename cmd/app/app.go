package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gardenhub/garden-api/internal/api"
	"github.com/gardenhub/garden-api/internal/config"
	"github.com/gardenhub/garden-api/internal/db"
	"github.com/gardenhub/garden-api/internal/logger"
	"github.com/gardenhub/garden-api/internal/repository"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	repos, err := buildRepositories(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	s := api.NewServer(conf, repos)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// buildRepositories picks the storage backend. A configured database
// wins, otherwise everything is held in memory.
func buildRepositories(conf *config.AppConfig) (*repository.Repositories, error) {
	var (
		postgresDB *gorm.DB
		err        error
	)

	switch {
	case os.Getenv("DATABASE_URL") != "":
		postgresDB, err = db.OpenPostgresWithURL(os.Getenv("DATABASE_URL"))
	case conf.Postgres != nil && conf.Postgres.Host != "":
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	default:
		zap.L().Info("no database configured, using in-memory storage")

		return repository.NewMemory(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database -> %w", err)
	}

	return repository.NewGorm(postgresDB), nil
}
