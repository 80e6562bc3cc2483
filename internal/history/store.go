// Package history keeps a bounded log of past extraction runs so the UI
// can show what was analyzed and exported recently.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/routeworks/docscan/internal/model"
)

// Entry is one recorded extraction run.
type Entry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Method        string    `json:"method"`
	AIPowered     bool      `json:"aiPowered"`
	Confidence    int       `json:"confidence"`
	DeliveryCount int       `json:"deliveryCount"`
	Exported      bool      `json:"exported"`
	Preview       string    `json:"preview"`

	Deliveries []model.DeliveryRecord `json:"deliveries"`
}

// Store persists extraction history in SQLite.
type Store struct {
	db    *sql.DB
	limit int
}

// Open opens the history database at the given path and configures WAL
// mode. limit caps the number of retained entries; older rows are pruned
// on every insert.
func Open(dsn string, limit int) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "history: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "history: exec %s", pragma)
		}
	}
	if limit <= 0 {
		limit = 50
	}
	return &Store{db: db, limit: limit}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS extractions (
	id             TEXT PRIMARY KEY,
	created_at     DATETIME NOT NULL DEFAULT (datetime('now')),
	method         TEXT NOT NULL,
	ai_powered     INTEGER NOT NULL DEFAULT 0,
	confidence     INTEGER NOT NULL,
	delivery_count INTEGER NOT NULL,
	exported       INTEGER NOT NULL DEFAULT 0,
	preview        TEXT NOT NULL,
	deliveries     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_extractions_created_at ON extractions(created_at);
`

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "history: migrate")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one extraction run and prunes entries beyond the retention
// limit. Returns the entry ID.
func (s *Store) Record(ctx context.Context, result *model.ExtractionResult, exported bool) (string, error) {
	deliveries, err := json.Marshal(result.Deliveries)
	if err != nil {
		return "", eris.Wrap(err, "history: marshal deliveries")
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, method, ai_powered, confidence, delivery_count, exported, preview, deliveries)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, result.Method, result.AIPowered, result.Confidence,
		result.DeliveryCount, exported, preview(result.RawText), string(deliveries),
	)
	if err != nil {
		return "", eris.Wrap(err, "history: insert")
	}

	_, err = s.db.ExecContext(ctx, `
		DELETE FROM extractions WHERE id NOT IN (
			SELECT id FROM extractions ORDER BY created_at DESC, id DESC LIMIT ?
		)`, s.limit)
	if err != nil {
		return "", eris.Wrap(err, "history: prune")
	}
	return id, nil
}

// MarkExported flags an entry after a successful export.
func (s *Store) MarkExported(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE extractions SET exported = 1 WHERE id = ?`, id)
	return eris.Wrap(err, "history: mark exported")
}

// List returns the retained entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, method, ai_powered, confidence, delivery_count, exported, preview, deliveries
		FROM extractions ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "history: list")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var deliveries string
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Method, &e.AIPowered,
			&e.Confidence, &e.DeliveryCount, &e.Exported, &e.Preview, &deliveries); err != nil {
			return nil, eris.Wrap(err, "history: scan")
		}
		if err := json.Unmarshal([]byte(deliveries), &e.Deliveries); err != nil {
			return nil, eris.Wrap(err, "history: unmarshal deliveries")
		}
		entries = append(entries, e)
	}
	return entries, eris.Wrap(rows.Err(), "history: iterate")
}

// preview keeps the first line, truncated, as a human-readable label.
func preview(text string) string {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	const max = 120
	if len(text) > max {
		return text[:max]
	}
	return text
}
