package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations aplica las migraciones pendientes desde el directorio indicado
func RunMigrations(migrationsPath string) error {
	sourceURL := fmt.Sprintf("file://%s", migrationsPath)

	m, err := migrate.New(sourceURL, DatabaseURL())
	if err != nil {
		return fmt.Errorf("error al crear la instancia de migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error al aplicar las migraciones: %w", err)
	}

	return nil
}

// RollbackMigration revierte la última migración aplicada
func RollbackMigration(migrationsPath string) error {
	sourceURL := fmt.Sprintf("file://%s", migrationsPath)

	m, err := migrate.New(sourceURL, DatabaseURL())
	if err != nil {
		return fmt.Errorf("error al crear la instancia de migrate: %w", err)
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("error al revertir la migración: %w", err)
	}

	return nil
}
