// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docforge/pkg/types"
)

// writeFile is a test helper that creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// buildInputs creates a report/source/template trio and returns a config.
func buildInputs(t *testing.T, dir string) types.BuildConfig {
	t.Helper()
	return types.BuildConfig{
		MarkdownPath:  writeFile(t, dir, "report.md", "### Título:\nX\n"),
		SourcePath:    writeFile(t, dir, "script.py", "print(1)\n"),
		TemplatePath:  writeFile(t, dir, "template.docx", "not a real zip"),
		OutputPath:    filepath.Join(dir, "out.docx"),
		IncludeSource: true,
	}
}

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", ".docforge.db")

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist")
}

func TestFingerprintChangesWithInputsAndOptions(t *testing.T) {
	dir := t.TempDir()
	cfg := buildInputs(t, dir)

	fp1, err := Fingerprint(cfg, "")
	require.NoError(t, err)

	// Same inputs, same fingerprint.
	fp2, err := Fingerprint(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2)

	// Option bit flips the fingerprint.
	cfg.Highlight = true
	fp3, err := Fingerprint(cfg, "")
	require.NoError(t, err)
	assert.NotEqual(t, fp1, fp3)

	// Profile identity flips the fingerprint.
	fp4, err := Fingerprint(cfg, "english.yaml")
	require.NoError(t, err)
	assert.NotEqual(t, fp3, fp4)

	// Touching an input flips the fingerprint.
	cfg.Highlight = false
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(cfg.MarkdownPath, future, future))
	fp5, err := Fingerprint(cfg, "")
	require.NoError(t, err)
	assert.NotEqual(t, fp1, fp5)
}

func TestFingerprintMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := buildInputs(t, dir)
	cfg.SourcePath = filepath.Join(dir, "absent.py")

	_, err := Fingerprint(cfg, "")
	assert.Error(t, err)
}

func TestNeedsBuildLifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := buildInputs(t, dir)

	m, err := Open(filepath.Join(dir, DefaultName))
	require.NoError(t, err)
	defer m.Close()

	fp, err := Fingerprint(cfg, "")
	require.NoError(t, err)

	// Never built.
	needs, err := m.NeedsBuild(ctx, cfg.MarkdownPath, fp, cfg.OutputPath)
	require.NoError(t, err)
	assert.True(t, needs, "unbuilt report must need a build")

	// Build recorded and output present: skip.
	writeFile(t, dir, "out.docx", "docx bytes")
	require.NoError(t, m.Record(ctx, cfg.MarkdownPath, fp, cfg.OutputPath))
	needs, err = m.NeedsBuild(ctx, cfg.MarkdownPath, fp, cfg.OutputPath)
	require.NoError(t, err)
	assert.False(t, needs, "unchanged report must be skipped")

	// Fingerprint drift: rebuild.
	needs, err = m.NeedsBuild(ctx, cfg.MarkdownPath, fp+"|changed", cfg.OutputPath)
	require.NoError(t, err)
	assert.True(t, needs)

	// Output deleted: rebuild even with matching fingerprint.
	require.NoError(t, os.Remove(cfg.OutputPath))
	needs, err = m.NeedsBuild(ctx, cfg.MarkdownPath, fp, cfg.OutputPath)
	require.NoError(t, err)
	assert.True(t, needs, "missing output must force a rebuild")
}

func TestRecordUpserts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	m, err := Open(filepath.Join(dir, DefaultName))
	require.NoError(t, err)
	defer m.Close()

	out := writeFile(t, dir, "out.docx", "bytes")
	require.NoError(t, m.Record(ctx, "r.md", "fp-one", out))
	require.NoError(t, m.Record(ctx, "r.md", "fp-two", out))

	needs, err := m.NeedsBuild(ctx, "r.md", "fp-two", out)
	require.NoError(t, err)
	assert.False(t, needs, "latest fingerprint should win")

	needs, err = m.NeedsBuild(ctx, "r.md", "fp-one", out)
	require.NoError(t, err)
	assert.True(t, needs, "stale fingerprint should rebuild")
}
