package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"campus-rooms/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	action := flag.String("action", "up", "up | down | drop")
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, *source, *action); err != nil {
		slog.Error("migration failed", "action", *action, "error", err)
		os.Exit(1)
	}

	slog.Info("migration finished", "action", *action)
}

func run(cfg config.Config, source, action string) error {
	mig, err := migrate.New(source, cfg.DB.BuildDSN())
	if err != nil {
		return err
	}
	defer mig.Close()

	switch action {
	case "up":
		err = mig.Up()
	case "down":
		err = mig.Steps(-1)
	case "drop":
		err = mig.Down()
	default:
		return errors.New("unknown action: " + action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
