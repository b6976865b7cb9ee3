package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/osutil"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	position  INTEGER PRIMARY KEY,
	timestamp TEXT    NOT NULL,
	task_name TEXT    NOT NULL DEFAULT '',
	days      INTEGER NOT NULL DEFAULT 0,
	hours     INTEGER NOT NULL DEFAULT 0,
	minutes   INTEGER NOT NULL DEFAULT 0,
	seconds   INTEGER NOT NULL DEFAULT 0
);`

// SQLite stores the history in a sessions table ordered by position.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and ensures the schema
// exists.
func NewSQLite(path string) (*SQLite, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(1)

	_, err = db.Exec(sqliteSchema)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load() (models.History, error) {
	rows, err := s.db.Query(
		`SELECT timestamp, task_name, days, hours, minutes, seconds
		 FROM sessions ORDER BY position`,
	)
	if err != nil {
		return models.History{}, err
	}

	defer rows.Close()

	h := models.History{}

	for rows.Next() {
		var sess models.Session

		err = rows.Scan(
			&sess.Timestamp,
			&sess.TaskName,
			&sess.Duration.Days,
			&sess.Duration.Hours,
			&sess.Duration.Minutes,
			&sess.Duration.Seconds,
		)
		if err != nil {
			return models.History{}, ErrMalformedData.Wrap(err)
		}

		h = append(h, sess)
	}

	if err = rows.Err(); err != nil {
		return models.History{}, err
	}

	return h, nil
}

// Flush rewrites the table inside one transaction.
func (s *SQLite) Flush(h models.History) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errFlush.Wrap(err)
	}

	err = replaceRows(tx, h)
	if err != nil {
		_ = tx.Rollback()
		return errFlush.Wrap(err)
	}

	err = tx.Commit()
	if err != nil {
		return errFlush.Wrap(err)
	}

	return nil
}

func replaceRows(tx *sql.Tx, h models.History) error {
	_, err := tx.Exec(`DELETE FROM sessions`)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO sessions
		 (position, timestamp, task_name, days, hours, minutes, seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}

	defer stmt.Close()

	for i, sess := range h {
		d := sess.Duration

		_, err = stmt.Exec(
			i,
			sess.Timestamp,
			sess.TaskName,
			d.Days,
			d.Hours,
			d.Minutes,
			d.Seconds,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
