package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// RunMigrations aplica las migraciones embebidas (idempotente: sin cambios no es error).
func RunMigrations(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("migration database handle is required")
	}
	source, err := iofs.New(embeddedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	// El *sql.DB envuelve el pool; migrator.Close lo cierra sin cerrar el pool.
	db := stdlib.OpenDBFromPool(pool)
	driver, err := migratepg.WithInstance(db, &migratepg.Config{MigrationsTable: "schema_migrations"})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("create migration driver: %w", err)
	}
	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() { _, _ = migrator.Close() }()

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
