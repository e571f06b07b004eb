package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for analytics.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create analytics dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure analytics db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		-- last_seen holds unix seconds.
		CREATE TABLE IF NOT EXISTS page_views (
			path TEXT PRIMARY KEY,
			views INTEGER NOT NULL DEFAULT 0,
			last_seen INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_page_views_views ON page_views(views);
	`)
	return err
}

// Record counts one view of path at time at.
func (s *Store) Record(ctx context.Context, path string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_views (path, views, last_seen) VALUES (?, 1, ?)
		ON CONFLICT(path) DO UPDATE SET views = views + 1, last_seen = excluded.last_seen`,
		path, at.Unix())
	if err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// Views returns the view count of path, zero if it was never viewed.
func (s *Store) Views(ctx context.Context, path string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT views FROM page_views WHERE path = ?`, path).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}

// Total returns the number of views across all pages.
func (s *Store) Total(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(views), 0) FROM page_views`).Scan(&n); err != nil {
		return 0, fmt.Errorf("total views: %w", err)
	}
	return n, nil
}

// Top returns the limit most viewed pages, most viewed first.
func (s *Store) Top(ctx context.Context, limit int) ([]PageStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, views, last_seen FROM page_views
		ORDER BY views DESC, path ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top pages: %w", err)
	}
	defer rows.Close()

	var out []PageStat
	for rows.Next() {
		var (
			p        PageStat
			lastSeen int64
		)
		if err := rows.Scan(&p.Path, &p.Views, &lastSeen); err != nil {
			return nil, err
		}
		p.LastSeen = time.Unix(lastSeen, 0).UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}
