package repositories

import (
	"context"
	"database/sql"
	"embed"

	"github.com/signflow/document-backend/infra"
	"github.com/signflow/document-backend/utils"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsFolder = "migrations"

type Migrater struct {
	pgConfig infra.PgConfig
}

func NewMigrater(pgConfig infra.PgConfig) *Migrater {
	return &Migrater{pgConfig: pgConfig}
}

func (m *Migrater) Run(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	db, err := sql.Open("pgx", m.pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "unable to ping database")
	}

	logger.InfoContext(ctx, "Migrations starting to setup DB: "+migrationsFolder)
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, migrationsFolder); err != nil {
		return errors.Wrap(err, "unable to run migrations")
	}
	logger.InfoContext(ctx, "Migrations done")
	return nil
}
