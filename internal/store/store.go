// Package store persists synthesised dataset entries to a SQLite database,
// one row per deduplicated (program, examples) pair, keyed by a bucket
// name and a generated UUID.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/HiroakiMikami/deep-coder/internal/codec"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/errs"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

const schema = `
CREATE TABLE IF NOT EXISTS dataset_entries (
	id             TEXT PRIMARY KEY,
	bucket_key     TEXT NOT NULL,
	program_text   TEXT NOT NULL,
	attribute_json TEXT NOT NULL,
	examples_json  TEXT NOT NULL,
	length         INTEGER NOT NULL,
	created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_dataset_entries_bucket ON dataset_entries(bucket_key);
CREATE TABLE IF NOT EXISTS bucket_shapes (
	bucket_key TEXT PRIMARY KEY,
	shape      TEXT NOT NULL
);
`

// Row is one stored dataset entry.
type Row struct {
	ID            string
	BucketKey     string
	Program       dsl.Program
	AttributeJSON string
	Examples      []interp.Example
	Length        int
	CreatedAt     time.Time
}

// Store wraps a *sql.DB holding the dataset_entries table.
type Store struct {
	db     *sql.DB
	closed bool
}

// Open creates (if needed) and opens a SQLite database at path, ensuring
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset store %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating dataset store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	s.closed = true
	return s.db.Close()
}

type exampleRow struct {
	Input  []string `json:"input"`
	Output string   `json:"output"`
}

// Put inserts one dataset entry under bucketKey with a freshly generated
// UUID primary key. shape is the bucket's input-read signature (e.g.
// "int,list", config.BucketSpec.Reads joined); the first Put under a
// bucket_key registers it, and any later Put under the same bucket_key
// with a different shape fails with errs.ErrDatasetBucketConflict rather
// than silently mixing incompatible example shapes in one bucket.
func (s *Store) Put(ctx context.Context, bucketKey, shape string, program dsl.Program, attributeJSON string, examples []interp.Example) error {
	if s.closed {
		return errs.ErrStoreClosed
	}
	if err := s.registerShape(ctx, bucketKey, shape); err != nil {
		return err
	}
	rows := make([]exampleRow, len(examples))
	for i, e := range examples {
		in := make([]string, len(e.Input))
		for j, v := range e.Input {
			in[j] = v.String()
		}
		rows[i] = exampleRow{Input: in, Output: e.Output.String()}
	}
	examplesJSON, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding examples: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO dataset_entries (id, bucket_key, program_text, attribute_json, examples_json, length, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, bucketKey, codec.EncodeProgram(program), attributeJSON, string(examplesJSON), program.Len(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting dataset entry: %w", err)
	}
	return nil
}

// registerShape records bucketKey's shape on first use and rejects any
// later call that names a different shape for the same bucket.
func (s *Store) registerShape(ctx context.Context, bucketKey, shape string) error {
	var existing string
	err := s.db.QueryRowContext(ctx, `SELECT shape FROM bucket_shapes WHERE bucket_key = ?`, bucketKey).Scan(&existing)
	switch {
	case err == sql.ErrNoRows:
		_, err := s.db.ExecContext(ctx, `INSERT INTO bucket_shapes (bucket_key, shape) VALUES (?, ?)`, bucketKey, shape)
		if err != nil {
			return fmt.Errorf("registering shape for bucket %s: %w", bucketKey, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("looking up shape for bucket %s: %w", bucketKey, err)
	case existing != shape:
		return fmt.Errorf("%w: bucket %q already registered with shape %q, got %q", errs.ErrDatasetBucketConflict, bucketKey, existing, shape)
	default:
		return nil
	}
}

func decodeExamples(rawJSON string) ([]interp.Example, error) {
	var rows []exampleRow
	if err := json.Unmarshal([]byte(rawJSON), &rows); err != nil {
		return nil, err
	}
	out := make([]interp.Example, len(rows))
	for i, r := range rows {
		input := make([]interp.Value, len(r.Input))
		for j, s := range r.Input {
			v, ok := codec.ParseValue(s)
			if !ok {
				return nil, fmt.Errorf("malformed input value %q", s)
			}
			input[j] = v
		}
		output, ok := codec.ParseValue(r.Output)
		if !ok {
			return nil, fmt.Errorf("malformed output value %q", r.Output)
		}
		out[i] = interp.Example{Input: input, Output: output}
	}
	return out, nil
}

// CountByBucket reports how many entries bucketKey currently holds.
func (s *Store) CountByBucket(ctx context.Context, bucketKey string) (int, error) {
	if s.closed {
		return 0, errs.ErrStoreClosed
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dataset_entries WHERE bucket_key = ?`, bucketKey).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting bucket %s: %w", bucketKey, err)
	}
	return n, nil
}

// AllInBucket returns every stored entry for bucketKey, decoded into Rows
// and ordered by created_at (RFC3339, one-second resolution); entries
// created within the same second come back in no defined order.
func (s *Store) AllInBucket(ctx context.Context, bucketKey string) ([]Row, error) {
	if s.closed {
		return nil, errs.ErrStoreClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, bucket_key, program_text, attribute_json, examples_json, length, created_at
		 FROM dataset_entries WHERE bucket_key = ? ORDER BY created_at`, bucketKey)
	if err != nil {
		return nil, fmt.Errorf("querying bucket %s: %w", bucketKey, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			id, bk, programText, attrJSON, exJSON, createdAt string
			length                                           int
		)
		if err := rows.Scan(&id, &bk, &programText, &attrJSON, &exJSON, &length, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning dataset row: %w", err)
		}
		program, ok := codec.DecodeProgram(programText)
		if !ok {
			return nil, fmt.Errorf("decoding stored program %s: malformed text", id)
		}
		created, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at for %s: %w", id, err)
		}
		examples, err := decodeExamples(exJSON)
		if err != nil {
			return nil, fmt.Errorf("decoding examples for %s: %w", id, err)
		}
		out = append(out, Row{
			ID: id, BucketKey: bk, Program: program, AttributeJSON: attrJSON,
			Examples: examples, Length: length, CreatedAt: created,
		})
	}
	return out, rows.Err()
}
