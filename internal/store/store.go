// Package store implements the flat-file record store: generic load and
// save of ordered, comma-delimited table files with a fixed column
// schema. Every operation is a blocking full-file read or full-file
// rewrite; there are no partial or append semantics.
//
// Concurrent callers are NOT supported. Two concurrent writers race and
// the last rewrite wins silently, losing updates. Callers embedding this
// package in anything other than a single-session process must wrap each
// load-mutate-save cycle in an external lock (e.g. an advisory file lock
// per table).
package store

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/rs/zerolog"
)

// Schema describes one logical table: its file name and the exact,
// ordered header columns.
type Schema struct {
	Name    string
	File    string
	Columns []string
}

// Record is one row, keyed by column name. Numeric fields travel as
// text and are re-parsed by the caller.
type Record map[string]string

// Store reads and writes whole table files under a single data directory.
type Store struct {
	dir string
	log zerolog.Logger
}

// New creates a Store rooted at dir.
func New(dir string, log zerolog.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the data directory this store reads and writes.
func (s *Store) Dir() string { return s.dir }

// Load reads all rows of the table. An absent file is an empty table,
// not an error; any other read failure surfaces as an IO-coded error.
func (s *Store) Load(schema Schema) ([]Record, error) {
	path := filepath.Join(s.dir, schema.File)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, response.WrapError(response.ErrIO, err, "open table %s", schema.Name)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, response.WrapError(response.ErrIO, err, "read table %s", schema.Name)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}

	s.log.Debug().Str("table", schema.Name).Int("rows", len(records)).Msg("table loaded")
	return records, nil
}

// Save overwrites the table with exactly the given records: a header row
// of the schema's column names followed by one row per record, columns
// emitted in schema order. The rewrite is total — a failure mid-write can
// leave the file truncated, so callers treat any error as "retry the
// whole operation".
func (s *Store) Save(schema Schema, records []Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return response.WrapError(response.ErrIO, err, "create data dir")
	}

	path := filepath.Join(s.dir, schema.File)
	f, err := os.Create(path)
	if err != nil {
		return response.WrapError(response.ErrIO, err, "create table %s", schema.Name)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(schema.Columns); err != nil {
		return response.WrapError(response.ErrIO, err, "write header %s", schema.Name)
	}

	row := make([]string, len(schema.Columns))
	for _, rec := range records {
		for i, col := range schema.Columns {
			row[i] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return response.WrapError(response.ErrIO, err, "write row %s", schema.Name)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return response.WrapError(response.ErrIO, err, "flush table %s", schema.Name)
	}
	if err := f.Close(); err != nil {
		return response.WrapError(response.ErrIO, err, "close table %s", schema.Name)
	}

	s.log.Debug().Str("table", schema.Name).Int("rows", len(records)).Msg("table saved")
	return nil
}
