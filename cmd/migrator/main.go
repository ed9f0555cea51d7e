package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/YusovID/review-assigner/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ilyakaznacheev/cleanenv"
)

type MigrationCfg struct {
	MigrationsPath  string `env:"MIGRATIONS_PATH" env-default:"./migrations"`
	MigrationsTable string `env:"MIGRATIONS_TABLE" env-default:"schema_migrations"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var migration MigrationCfg
	if err := cleanenv.ReadEnv(&migration); err != nil {
		log.Fatalf("failed to read migration settings: %v", err)
	}

	databaseURL, err := migrationURL(cfg.Postgres, migration.MigrationsTable)
	if err != nil {
		log.Fatalf("failed to build database url: %v", err)
	}

	m, err := migrate.New("file://"+migration.MigrationsPath, databaseURL)
	if err != nil {
		log.Fatalf("can't create new migration: %v", err)
	}

	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("close migrate: source=%v database=%v", srcErr, dbErr)
		}
	}()

	var cmd string
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "down":
		if err := down(m); err != nil {
			log.Fatal(err)
		}

		fmt.Println("migrations rolled back successfully")
	case "", "up":
		if err := up(m); err != nil {
			log.Fatal(err)
		}

		fmt.Println("migrations applied successfully")
	default:
		log.Fatalf("unknown command %q, want up or down", cmd)
	}
}

// migrationURL turns the service DSN into a golang-migrate url: the scheme selects
// the migrate driver matching postgres.driver.
func migrationURL(pg config.Postgres, table string) (string, error) {
	u, err := url.Parse(pg.DSN())
	if err != nil {
		return "", err
	}

	if pg.Driver == config.DriverPGX {
		u.Scheme = "pgx5"
	}

	q := u.Query()
	q.Set("x-migrations-table", table)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no new migrations to apply")
			return nil
		}

		return fmt.Errorf("can't do migrations: %w", err)
	}

	return nil
}

func down(m *migrate.Migrate) error {
	if err := m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("no migrations to roll back")
		}

		return fmt.Errorf("can't down migrations: %w", err)
	}

	return nil
}
