package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// =============================================================================
// SQLite Store
// =============================================================================

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	variant    TEXT NOT NULL,
	program    TEXT NOT NULL,
	document   TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS projects_created ON projects (created_at, id);
`

const sqliteTime = time.RFC3339Nano

// SQLiteStore persists projects in a single SQLite file. Program and
// document are stored as JSON text.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Create(ctx context.Context, p *Project) error {
	if err := prepareCreate(p, s.now()); err != nil {
		return err
	}
	program, document, err := encodeProject(p)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, variant, program, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Variant, program, document,
		p.CreatedAt.Format(sqliteTime), p.UpdatedAt.Format(sqliteTime))
	if err != nil {
		return fmt.Errorf("insert project %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, variant, program, document, created_at, updated_at
		FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	return p, err
}

func (s *SQLiteStore) Save(ctx context.Context, p *Project) error {
	program, document, err := encodeProject(p)
	if err != nil {
		return err
	}
	updated := s.now().UTC().Truncate(time.Millisecond)
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects SET name = ?, variant = ?, program = ?, document = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Variant, program, document, updated.Format(sqliteTime), p.ID)
	if err != nil {
		return fmt.Errorf("update project %s: %w", p.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(p.ID)
	}
	p.UpdatedAt = updated
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(id)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]*Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, variant, program, document, created_at, updated_at
		FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := []*Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// =============================================================================
// Row Encoding
// =============================================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*Project, error) {
	var (
		p                  Project
		program, document  string
		createdAt, updated string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Variant, &program, &document, &createdAt, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(program), &p.Program); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode program of %s", p.ID)
	}
	var doc plan.Document
	if err := json.Unmarshal([]byte(document), &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode document of %s", p.ID)
	}
	p.Document = &doc

	var err error
	if p.CreatedAt, err = time.Parse(sqliteTime, createdAt); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "created_at of %s", p.ID)
	}
	if p.UpdatedAt, err = time.Parse(sqliteTime, updated); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "updated_at of %s", p.ID)
	}
	return &p, nil
}

func encodeProject(p *Project) (program, document string, err error) {
	pb, err := json.Marshal(p.Program)
	if err != nil {
		return "", "", fmt.Errorf("encode program: %w", err)
	}
	db, err := json.Marshal(p.Document)
	if err != nil {
		return "", "", fmt.Errorf("encode document: %w", err)
	}
	return string(pb), string(db), nil
}
