// Package contentdump indexes compiled pages into a searchable sink and
// gates duplicate indexing through an explicit per-process context.
package contentdump

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// IndexedPage is one row of the search index.
type IndexedPage struct {
	Path    string
	Route   string
	Locale  string
	Title   string
	Content string
	BuildID string
}

// Index is a SQLite-backed page search index.
type Index struct {
	db *sql.DB
}

// NewIndex opens or creates the index database.
// Use ":memory:" for an in-memory database, or a file path for persistence.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	idx := &Index{db: db}
	if err := idx.initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return idx, nil
}

func (i *Index) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		route TEXT NOT NULL,
		locale TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		build_id TEXT NOT NULL,
		updated INTEGER NOT NULL,
		PRIMARY KEY (route, locale)
	);
	CREATE INDEX IF NOT EXISTS idx_pages_build ON pages(build_id);
	`
	_, err := i.db.Exec(schema)
	return err
}

// Put upserts one page row.
func (i *Index) Put(ctx context.Context, page IndexedPage) error {
	_, err := i.db.ExecContext(ctx, `
		INSERT INTO pages (route, locale, title, content, build_id, updated)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (route, locale) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			build_id = excluded.build_id,
			updated = excluded.updated`,
		page.Route, page.Locale, page.Title, page.Content, page.BuildID, time.Now().Unix())
	return err
}

// Get fetches one page row by route and locale.
func (i *Index) Get(ctx context.Context, route, locale string) (*IndexedPage, error) {
	row := i.db.QueryRowContext(ctx,
		`SELECT route, locale, title, content, build_id FROM pages WHERE route = ? AND locale = ?`,
		route, locale)
	var p IndexedPage
	if err := row.Scan(&p.Route, &p.Locale, &p.Title, &p.Content, &p.BuildID); err != nil {
		return nil, err
	}
	return &p, nil
}

// Count returns the number of indexed pages.
func (i *Index) Count(ctx context.Context) (int, error) {
	var n int
	err := i.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}

// Close releases the underlying database handle.
func (i *Index) Close() error { return i.db.Close() }
