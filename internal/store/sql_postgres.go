// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

// Package store owns the control-connection plumbing: opening the PostgreSQL
// database that backs user preference storage, running migrations against it,
// and classifying driver errors for retry decisions.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver registration

	"github.com/dkovalev/go-db-console/internal/config"
	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/migrations"
)

// DB is the open control connection used for preference storage.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens and pings the preference database.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// Migrate runs the embedded schema migrations against the connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Classify reports whether a failed operation on this connection is worth
// retrying.
func (db *DB) Classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}
