// Package store persists certificate form records in a local SQLite
// database. The rest of the system consumes records only as flat
// field-value maps; nothing outside this package knows about SQL.
package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"ritualform/internal/logger"
	"ritualform/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL DEFAULT '',
	designation  TEXT NOT NULL DEFAULT '',
	mandarin     TEXT NOT NULL DEFAULT '',
	romanized    TEXT NOT NULL DEFAULT '',
	sender       TEXT NOT NULL DEFAULT '',
	family       TEXT NOT NULL DEFAULT '',
	remark       TEXT NOT NULL DEFAULT '',
	lunar_year   TEXT NOT NULL DEFAULT '',
	lunar_month  TEXT NOT NULL DEFAULT '',
	lunar_day    TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL
);`

// Store is a record store backed by one SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists. WAL mode keeps interleaved reads and writes cheap.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, types.NewAppError(types.ErrStore, "failed to create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, types.NewAppError(types.ErrStore, "failed to open database", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, types.NewAppError(types.ErrStore, "failed to enable WAL mode", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, types.NewAppError(types.ErrStore, "failed to create schema", err)
	}

	logger.Info("record store opened", logger.String("path", path))
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a new record and returns its generated id. The record's
// ID and CreatedAt fields are ignored; the store assigns both.
func (s *Store) Create(rec types.Record) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO records
			(id, name, designation, mandarin, romanized,
			 sender, family, remark, lunar_year, lunar_month, lunar_day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		id, rec.Name, rec.Designation, rec.Mandarin, rec.Romanized,
		rec.Sender, rec.Family, rec.Remark,
		rec.LunarYear, rec.LunarMonth, rec.LunarDay,
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", types.NewAppError(types.ErrStore, "failed to insert record", err)
	}
	return id, nil
}

const selectColumns = `
	id, name, designation, mandarin, romanized,
	sender, family, remark, lunar_year, lunar_month, lunar_day, created_at`

// List returns every record, newest first.
func (s *Store) List() ([]types.Record, error) {
	rows, err := s.db.Query(`SELECT` + selectColumns + `
		FROM records ORDER BY created_at DESC, rowid DESC;`)
	if err != nil {
		return nil, types.NewAppError(types.ErrStore, "failed to list records", err)
	}
	defer rows.Close()

	var out []types.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrStore, "failed to read records", err)
	}
	return out, nil
}

// Get fetches one record by id.
func (s *Store) Get(id string) (types.Record, error) {
	row := s.db.QueryRow(`SELECT`+selectColumns+`
		FROM records WHERE id = ?;`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Record{}, types.NewAppErrorWithDetails(types.ErrRecordNotFound,
				"record not found", id, nil)
		}
		return types.Record{}, err
	}
	return rec, nil
}

// Delete removes one record by id, reporting whether it existed.
func (s *Store) Delete(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM records WHERE id = ?;`, id)
	if err != nil {
		return false, types.NewAppError(types.ErrStore, "failed to delete record", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, types.NewAppError(types.ErrStore, "failed to read delete result", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (types.Record, error) {
	var rec types.Record
	var created string
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Designation, &rec.Mandarin, &rec.Romanized,
		&rec.Sender, &rec.Family, &rec.Remark,
		&rec.LunarYear, &rec.LunarMonth, &rec.LunarDay, &created,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Record{}, err
		}
		return types.Record{}, types.NewAppError(types.ErrStore, "failed to scan record", err)
	}
	if t, perr := time.Parse(time.RFC3339Nano, created); perr == nil {
		rec.CreatedAt = t
	}
	return rec, nil
}
