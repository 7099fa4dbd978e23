package config

import (
	"fmt"

	"task-tracker/internal/repository/sqlite"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithConfig(config.GetDatabasePath(), sqlite.Options{
		QueryTimeout:   config.GetQueryTimeout(),
		WriteTimeout:   config.GetWriteTimeout(),
		DirPermissions: config.Database.DirPermissions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
