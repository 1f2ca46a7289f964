// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest tracks batch build state in SQLite so unchanged reports
// are skipped on subsequent runs. A build is identified by its report path;
// its fingerprint folds in the modification times of every input plus the
// option bits, so touching any input or flipping a flag forces a rebuild.
package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docforge/pkg/types"
)

// DefaultName is the manifest filename placed under the batch output
// directory when no explicit path is given.
const DefaultName = ".docforge.db"

// Manifest is an open build-state database.
type Manifest struct {
	db *sql.DB
}

// Open opens or creates the manifest database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Manifest, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating manifest directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}

	m := &Manifest{db: db}
	if err := m.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating manifest schema: %w", err)
	}
	return m, nil
}

// Close releases the database connection.
func (m *Manifest) Close() error {
	return m.db.Close()
}

func (m *Manifest) createSchema() error {
	_, err := m.db.Exec(`CREATE TABLE IF NOT EXISTS builds (
		report_path TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		output_path TEXT NOT NULL,
		built_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Fingerprint derives the build identity for one report: input mod-times
// plus the options that change the output. Any missing input is an error;
// callers validate existence before fingerprinting.
func Fingerprint(cfg types.BuildConfig, profilePath string) (string, error) {
	var parts []string
	for _, p := range []string{cfg.MarkdownPath, cfg.SourcePath, cfg.TemplatePath} {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("fingerprinting %s: %w", p, err)
		}
		parts = append(parts, info.ModTime().UTC().Format(time.RFC3339Nano))
	}
	parts = append(parts,
		strconv.FormatBool(cfg.IncludeSource),
		strconv.FormatBool(cfg.Highlight),
		profilePath,
	)
	return strings.Join(parts, "|"), nil
}

// NeedsBuild reports whether reportPath must be rebuilt: true when it has
// never been built, when its fingerprint changed, or when the recorded
// output file no longer exists.
func (m *Manifest) NeedsBuild(ctx context.Context, reportPath, fingerprint, outputPath string) (bool, error) {
	var stored string
	err := m.db.QueryRowContext(ctx,
		`SELECT fingerprint FROM builds WHERE report_path = ?`, reportPath,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying manifest: %w", err)
	}

	if stored != fingerprint {
		return true, nil
	}
	if _, err := os.Stat(outputPath); err != nil {
		return true, nil
	}
	return false, nil
}

// Record upserts the build row for reportPath after a successful build.
func (m *Manifest) Record(ctx context.Context, reportPath, fingerprint, outputPath string) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO builds (report_path, fingerprint, output_path, built_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(report_path) DO UPDATE SET
			fingerprint=excluded.fingerprint,
			output_path=excluded.output_path,
			built_at=excluded.built_at`,
		reportPath, fingerprint, outputPath, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording build: %w", err)
	}
	return nil
}
