package cmd

import (
	"context"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateDir string
)

func init() {
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "db/migrations", "sql migrations directory")
}

func gooseDriver(dialect string) string {
	if dialect == "postgres" {
		return "pgx"
	}
	return "sqlite3"
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := goose.OpenDBWithDriver(gooseDriver(cfg.Database.Dialect), cfg.Database.GetDSN())
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v\n", err)
	}
	goose.SetTableName("schema_migrations")

	if err := goose.RunContext(ctx, "up", db, migrateDir); err != nil {
		log.Fatalf("goose up: %v", err)
	}

	return nil
}
