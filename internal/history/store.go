package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded render invocation.
type Entry struct {
	ID              int64
	ProjectID       string
	OutputPath      string
	SceneCount      int
	DurationSeconds int
	GeneratedAt     time.Time
}

// Store manages render-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history database path must not be empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: filepath.Clean(path)}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one render invocation and returns the stored entry.
func (s *Store) Record(ctx context.Context, entry Entry) (*Entry, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO render_history (
            project_id, output_path, scene_count, duration_seconds, generated_at
        ) VALUES (?, ?, ?, ?, ?)`,
		entry.ProjectID,
		entry.OutputPath,
		entry.SceneCount,
		entry.DurationSeconds,
		entry.GeneratedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert render entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.getByID(ctx, id)
}

// List returns all entries ordered oldest-first.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM render_history ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list render history: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ForProject returns the entries recorded for one project, oldest-first.
func (s *Store) ForProject(ctx context.Context, projectID string) ([]*Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+entryColumns+` FROM render_history WHERE project_id = ? ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query render history: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// Clear removes all recorded entries.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM render_history`)
	if err != nil {
		return 0, fmt.Errorf("clear render history: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) getByID(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM render_history WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("get render entry: %w", err)
	}
	return entry, nil
}

const entryColumns = "id, project_id, output_path, scene_count, duration_seconds, generated_at"

func collectEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry        Entry
		generatedRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.ProjectID,
		&entry.OutputPath,
		&entry.SceneCount,
		&entry.DurationSeconds,
		&generatedRaw,
	); err != nil {
		return nil, err
	}
	if generated, err := time.Parse(time.RFC3339Nano, generatedRaw); err == nil {
		entry.GeneratedAt = generated
	}
	return &entry, nil
}
