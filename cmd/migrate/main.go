// Package main applies or rolls back the heroes schema.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"github.com/cory-johannsen/herogen/internal/config"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	envFile := flag.String("env", ".env", "optional dotenv file loaded before config")
	direction := flag.String("direction", "up", "up, down, or version")
	steps := flag.Int("steps", 0, "number of steps (0 = all)")
	migrationsDir := flag.String("path", "migrations", "directory holding the SQL migrations")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("loading %s: %v", *envFile, err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if err := run(cfg.Database, *migrationsDir, *direction, *steps); err != nil {
		log.Fatal(err)
	}
}

func run(db config.DatabaseConfig, dir, direction string, steps int) error {
	start := time.Now()
	m, err := migrate.New("file://"+dir, db.DSN())
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	switch {
	case direction == "version":
		err = nil
	case direction == "up" && steps > 0:
		err = m.Steps(steps)
	case direction == "up":
		err = m.Up()
	case direction == "down" && steps > 0:
		err = m.Steps(-steps)
	case direction == "down":
		err = m.Down()
	default:
		return fmt.Errorf("invalid direction %q: must be up, down, or version", direction)
	}
	noChange := errors.Is(err, migrate.ErrNoChange)
	if err != nil && !noChange {
		return fmt.Errorf("migrating %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("reading version: %w", verr)
	}
	switch {
	case direction == "version":
		fmt.Fprintf(os.Stdout, "version=%d dirty=%v\n", version, dirty)
	case noChange:
		fmt.Fprintf(os.Stdout, "no changes (version=%d dirty=%v) [%s]\n", version, dirty, time.Since(start))
	default:
		fmt.Fprintf(os.Stdout, "migrated %s to version=%d dirty=%v [%s]\n", direction, version, dirty, time.Since(start))
	}
	return nil
}
