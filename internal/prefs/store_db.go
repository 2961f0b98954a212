// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/internal/store"
	"github.com/dkovalev/go-db-console/models"
)

// DBStore is the PostgreSQL-backed preference store. One row per user in
// the user_config table; the overlay document lives in a JSONB column.
type DBStore struct {
	db         *sql.DB
	classifier store.ErrorClassificator
	builder    sq.StatementBuilderType
	logger     *logger.Logger
}

// NewDBStore constructs a [DBStore] over an open database connection. The
// classifier decides which database faults count as the storage being
// unavailable rather than a hard error.
func NewDBStore(db *sql.DB, classifier store.ErrorClassificator, log *logger.Logger) *DBStore {
	log.Debug().Msg("creating preference store")
	return &DBStore{
		db:         db,
		classifier: classifier,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:     log,
	}
}

// Kind implements [Store].
func (s *DBStore) Kind() StorageKind {
	return StorageDB
}

// Load implements [Store]. A user with no stored row gets an empty overlay
// and a nil error; absence of preferences is not a fault.
func (s *DBStore) Load(ctx context.Context, userID int64) (Overlay, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select("config_data", "updated_at").
		From(models.UserConfig{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return Overlay{}, fmt.Errorf("error building load query: %w", err)
	}

	var record models.UserConfig
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&record.ConfigData, &record.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Overlay{Storage: StorageDB, Loaded: time.Now()}, nil
		}

		log.Err(err).Str("func", "*DBStore.Load").Msg("error reading stored overlay")
		if s.unavailable(err) {
			return Overlay{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		return Overlay{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	overlay, err := decodeOverlay(record.ConfigData)
	if err != nil {
		log.Err(err).Str("func", "*DBStore.Load").Msg("error decoding stored overlay")
		return Overlay{}, err
	}

	overlay.Storage = StorageDB
	overlay.Loaded = time.Now()
	return overlay, nil
}

// Apply implements [Store]. The stored document is replaced wholesale.
func (s *DBStore) Apply(ctx context.Context, userID int64, overlay Overlay) (StorageKind, error) {
	doc := overlayDocument{Server: overlay.Server}
	if options := settingsDocument(overlay.Options); len(options) > 0 {
		doc.Options = options
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return StorageNone, fmt.Errorf("error encoding overlay: %w", err)
	}

	if err := s.upsert(ctx, userID, data); err != nil {
		return StorageNone, err
	}
	return StorageDB, nil
}

// PersistOption implements [Store]. The stored document is read, the one
// key updated or removed, and the result written back. An empty document
// removes the row entirely.
func (s *DBStore) PersistOption(ctx context.Context, userID int64, path string, value, baseline any) *Diagnostic {
	log := logger.FromContext(ctx)

	raw, err := s.loadRaw(ctx, userID)
	if err != nil {
		return &Diagnostic{Path: path, Err: err}
	}

	data, hasPayload, err := setDocumentOption(raw, path, value, baseline)
	if err != nil {
		return &Diagnostic{Path: path, Err: err}
	}

	if !hasPayload {
		if err := s.deleteRow(ctx, userID); err != nil {
			log.Err(err).Str("func", "*DBStore.PersistOption").Msg("error removing empty overlay row")
			return &Diagnostic{Path: path, Err: err}
		}
		return nil
	}

	if err := s.upsert(ctx, userID, data); err != nil {
		log.Err(err).Str("func", "*DBStore.PersistOption").Msg("error writing overlay")
		return &Diagnostic{Path: path, Err: err}
	}
	return nil
}

func (s *DBStore) loadRaw(ctx context.Context, userID int64) ([]byte, error) {
	query, args, err := s.builder.
		Select("config_data").
		From(models.UserConfig{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building load query: %w", err)
	}

	var raw []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	return raw, nil
}

func (s *DBStore) upsert(ctx context.Context, userID int64, data []byte) error {
	query, args, err := s.builder.
		Insert(models.UserConfig{}.TableName()).
		Columns("user_id", "config_data", "updated_at").
		Values(userID, data, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET config_data = EXCLUDED.config_data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building upsert query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

func (s *DBStore) deleteRow(ctx context.Context, userID int64) error {
	query, args, err := s.builder.
		Delete(models.UserConfig{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

// unavailable reports whether err means the configuration storage cannot
// serve right now: any retryable fault per the classifier, or a missing
// user_config table (migrations not applied).
func (s *DBStore) unavailable(err error) bool {
	if s.classifier != nil && s.classifier.Classify(err) == store.Retryable {
		return true
	}
	return postgresErrorCode(err) == pgerrcode.UndefinedTable
}

func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
