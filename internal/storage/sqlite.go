package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/hyperjump/kura/internal/filter"
	"github.com/hyperjump/kura/internal/models"
)

const driverName = "sqlite3_kura"

var patterns sync.Map // pattern -> *regexp.Regexp

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("kura_regexp", regexpMatch, true)
		},
	})
}

// regexpMatch backs the kura_regexp SQL function with the same matching rules as filter.Regex.
func regexpMatch(pattern string, value interface{}) (bool, error) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s, _ = filter.Text(v)
	default:
		return false, nil
	}
	cached, ok := patterns.Load(pattern)
	if !ok {
		re, err := filter.Compile(pattern)
		if err != nil {
			return false, err
		}
		cached, _ = patterns.LoadOrStore(pattern, re)
	}
	return cached.(*regexp.Regexp).MatchString(s), nil
}

// SQLiteIndex implements Index using SQLite and its JSON1 functions.
type SQLiteIndex struct {
	db *sql.DB
}

// NewSQLiteIndex opens or creates a SQLite database at dbPath and initializes the schema,
// including the unique index on SOP Instance UID.
// Parent directories are created if they do not exist.
func NewSQLiteIndex(dbPath string) (*SQLiteIndex, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open(driverName, dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteIndex{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS instances (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		sop_instance_uid TEXT NOT NULL,
		series_instance_uid TEXT NOT NULL DEFAULT '',
		study_instance_uid TEXT NOT NULL DEFAULT '',
		dataset TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_instances_sop ON instances(sop_instance_uid);
	CREATE INDEX IF NOT EXISTS idx_instances_study ON instances(study_instance_uid);
	CREATE INDEX IF NOT EXISTS idx_instances_series ON instances(series_instance_uid);
	`
	_, err := db.Exec(schema)
	return err
}

// Type returns the index type identifier.
func (s *SQLiteIndex) Type() string {
	return string(IndexTypeSQLite)
}

// Insert stores ds. A unique constraint violation is reported as ErrDuplicateObject.
func (s *SQLiteIndex) Insert(ctx context.Context, ds models.Dataset) error {
	study, series, sop, err := identifiers(ds)
	if err != nil {
		return err
	}
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO instances (sop_instance_uid, series_instance_uid, study_instance_uid, dataset)
		 VALUES (?, ?, ?, ?)`,
		sop, series, study, string(data),
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %s", ErrDuplicateObject, sop)
	}
	return err
}

// Find returns datasets matching f ordered by insertion.
func (s *SQLiteIndex) Find(ctx context.Context, f filter.Filter) ([]models.Dataset, error) {
	where, args, err := compileSQL(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT dataset FROM instances WHERE `+where+` ORDER BY seq`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Dataset
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var ds models.Dataset
		if err := json.Unmarshal([]byte(raw), &ds); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
		}
		out = append(out, ds)
	}
	return out, rows.Err()
}

// Stats returns instance, series and study counts.
func (s *SQLiteIndex) Stats(ctx context.Context) (models.IndexStats, error) {
	var st models.IndexStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COUNT(DISTINCT NULLIF(series_instance_uid, '')),
		        COUNT(DISTINCT NULLIF(study_instance_uid, ''))
		 FROM instances`,
	).Scan(&st.Instances, &st.Series, &st.Studies)
	return st, err
}

// Close closes the database connection.
func (s *SQLiteIndex) Close() error {
	return s.db.Close()
}

const valuesOf = `EXISTS (SELECT 1 FROM json_each(instances.dataset, ?) AS v WHERE `

// compileSQL translates a filter into a WHERE clause over the instances table.
// Values are matched element-wise over the attribute's Value array, the same way filter.Match does.
func compileSQL(f filter.Filter) (string, []any, error) {
	switch n := f.(type) {
	case filter.And:
		if len(n) == 0 {
			return "1", nil, nil
		}
		clause := "("
		var args []any
		for i, sub := range n {
			c, a, err := compileSQL(sub)
			if err != nil {
				return "", nil, err
			}
			if i > 0 {
				clause += " AND "
			}
			clause += c
			args = append(args, a...)
		}
		return clause + ")", args, nil
	case *filter.Regex:
		path := valuePath(n.Tag)
		if n.Component != "" {
			return valuesOf + `v.type = 'object' AND kura_regexp(?, COALESCE(json_extract(v.value, ?), '')))`,
				[]any{path, n.Pattern, "$." + n.Component}, nil
		}
		return valuesOf + `v.type IN ('text', 'integer', 'real') AND kura_regexp(?, v.value))`,
			[]any{path, n.Pattern}, nil
	case *filter.Range:
		return valuesOf + `v.type = 'text' AND v.value >= ? AND v.value <= ?)`,
			[]any{valuePath(n.Tag), n.Lower, n.Upper}, nil
	}
	return "", nil, fmt.Errorf("unsupported filter node %T", f)
}

func valuePath(tag string) string {
	return `$."` + tag + `".Value`
}
