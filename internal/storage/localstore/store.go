// Package localstore keeps the ephemeral convenience state of the admin UI
// (recent searches, bookmarks) in an embedded sqlite file. Nothing in here
// is authoritative; deleting the file only loses conveniences.
package localstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

type Bookmark struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type RecentSearch struct {
	Scope      string    `json:"scope"`
	Term       string    `json:"term"`
	SearchedAt time.Time `json:"searched_at"`
}

func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`PRAGMA foreign_keys=ON;`,
		`CREATE TABLE IF NOT EXISTS recent_searches (
			scope TEXT NOT NULL,
			term TEXT NOT NULL,
			searched_at TIMESTAMP NOT NULL,
			PRIMARY KEY (scope, term)
		);`,
		`CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AddSearch records a search term for a scope, refreshing its timestamp on
// repeats and trimming the scope down to limit entries.
func (s *Store) AddSearch(ctx context.Context, scope, term string, limit int) error {
	if term == "" {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recent_searches (scope, term, searched_at)
		VALUES (?, ?, ?)
		ON CONFLICT (scope, term) DO UPDATE SET searched_at = excluded.searched_at`,
		scope, term, time.Now().UTC())
	if err != nil {
		return err
	}

	if limit <= 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx, `
		DELETE FROM recent_searches
		WHERE scope = ? AND term NOT IN (
			SELECT term FROM recent_searches
			WHERE scope = ?
			ORDER BY searched_at DESC
			LIMIT ?
		)`, scope, scope, limit)
	return err
}

func (s *Store) RecentSearches(ctx context.Context, scope string, limit int) ([]RecentSearch, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT scope, term, searched_at
		FROM recent_searches
		WHERE scope = ?
		ORDER BY searched_at DESC
		LIMIT ?`, scope, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	searches := []RecentSearch{}
	for rows.Next() {
		var rs RecentSearch
		if err := rows.Scan(&rs.Scope, &rs.Term, &rs.SearchedAt); err != nil {
			return nil, err
		}
		searches = append(searches, rs)
	}
	return searches, rows.Err()
}

func (s *Store) AddBookmark(ctx context.Context, title, url string) (*Bookmark, error) {
	b := &Bookmark{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       url,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (id, title, url, created_at)
		VALUES (?, ?, ?, ?)`,
		b.ID, b.Title, b.URL, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, created_at
		FROM bookmarks
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := []Bookmark{}
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.Title, &b.URL, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// DeleteBookmark is idempotent; deleting an absent id is a no-op.
func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	return err
}
