// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build assembles Word documents from parsed Markdown reports.
// A build reads three inputs (report, companion source file, template),
// maps report sections onto template styles per a profile, and writes one
// .docx output. Batch builds run the same transform over a directory of
// reports, skipping unchanged ones via the manifest.
package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/docforge/internal/docx"
	"github.com/pdiddy/docforge/internal/highlight"
	"github.com/pdiddy/docforge/internal/manifest"
	"github.com/pdiddy/docforge/internal/report"
	"github.com/pdiddy/docforge/pkg/types"
)

// bulletMarker prefixes each rendered list item, as a bold run.
const bulletMarker = "• "

// CheckInputs verifies the three input files exist. These are parameter
// errors, reported before any parsing begins.
func CheckInputs(cfg types.BuildConfig) error {
	if _, err := os.Stat(cfg.MarkdownPath); err != nil {
		return fmt.Errorf("markdown report not found: %s", cfg.MarkdownPath)
	}
	if _, err := os.Stat(cfg.SourcePath); err != nil {
		return fmt.Errorf("source file not found: %s", cfg.SourcePath)
	}
	if _, err := os.Stat(cfg.TemplatePath); err != nil {
		return fmt.Errorf("template not found: %s", cfg.TemplatePath)
	}
	return nil
}

// BuildReport runs one full report-to-docx transform and writes a status
// line to w on success.
func BuildReport(cfg types.BuildConfig, prof types.Profile, w io.Writer) error {
	if err := CheckInputs(cfg); err != nil {
		return err
	}

	mdData, err := os.ReadFile(cfg.MarkdownPath)
	if err != nil {
		return fmt.Errorf("reading markdown report: %w", err)
	}
	srcData, err := os.ReadFile(cfg.SourcePath)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	rep := report.Parse(string(mdData))

	doc, err := docx.Open(cfg.TemplatePath)
	if err != nil {
		return err
	}

	assemble(doc, rep, prof, cfg, filepath.Base(cfg.SourcePath), string(srcData))

	if err := doc.Save(cfg.OutputPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "built: %s (%d paragraphs)\n", cfg.OutputPath, doc.ParagraphCount())
	return nil
}

// assemble appends the document content: title, profiled sections, the
// code fallback, and the optional source annex.
func assemble(doc *docx.Document, rep types.Report, prof types.Profile, cfg types.BuildConfig, srcName, src string) {
	// Title paragraph; the source filename stands in when the title
	// section is absent or empty.
	title, ok := rep.Section(prof.TitleKey)
	if !ok {
		title = srcName
	}
	if doc.HasStyle(prof.Styles.Title) {
		doc.AddParagraph(prof.Styles.Title, docx.Run{Text: title})
	} else {
		doc.AddHeading(title, 1)
	}

	// Sections in profile order; keys without content are skipped.
	for _, key := range prof.SectionKeys {
		content, ok := rep.Section(key)
		if !ok {
			continue
		}
		doc.AddHeading(key, 2)

		switch {
		case prof.IsListKey(key):
			items := report.BulletItems(content)
			if len(items) == 0 {
				addProse(doc, prof.Styles.Normal, content)
				break
			}
			for _, item := range items {
				doc.AddParagraph(prof.Styles.List,
					docx.Run{Text: bulletMarker, Bold: true},
					docx.Run{Text: item})
			}
		case key == prof.ExampleKey:
			if code, found := report.ExtractFencedCode(content); found {
				addCode(doc, prof.Styles.Code, code, "", cfg.Highlight)
			} else {
				addProse(doc, prof.Styles.Normal, content)
			}
		default:
			addProse(doc, prof.Styles.Normal, content)
		}
	}

	// Fallback: the example section exists but carried no fence of its
	// own, while a fenced block sat elsewhere in the report.
	if exContent, ok := rep.Sections[prof.ExampleKey]; ok {
		if _, found := report.ExtractFencedCode(exContent); !found && rep.HasCode {
			doc.AddHeading(prof.ExampleKey, 2)
			addCode(doc, prof.Styles.Code, rep.Code, "", cfg.Highlight)
		}
	}

	if cfg.IncludeSource {
		doc.AddHeading(prof.AnnexHeading, 2)
		addCode(doc, prof.Styles.Code, src, srcName, cfg.Highlight)
	}
}

// addProse appends content as one paragraph, line breaks rendered as soft
// breaks within it.
func addProse(doc *docx.Document, style, content string) {
	lines := strings.Split(content, "\n")
	runs := make([]docx.Run, 0, len(lines))
	for i, line := range lines {
		runs = append(runs, docx.Run{Text: line, Break: i < len(lines)-1})
	}
	doc.AddParagraph(style, runs...)
}

// addCode appends code one paragraph per line. Empty lines render as a
// single space so the paragraph keeps its height; every line but the last
// carries a trailing soft break. filename picks the highlight lexer and is
// empty for fenced blocks, whose language tag the extractor discards.
func addCode(doc *docx.Document, style, code, filename string, colored bool) {
	code = strings.ReplaceAll(code, "\r\n", "\n")

	var lines [][]docx.Run
	if colored {
		lines = highlight.Lines(filename, code)
	} else {
		lines = highlight.PlainLines(code)
	}

	for i, runs := range lines {
		if len(runs) == 0 {
			runs = []docx.Run{{Text: " "}}
		}
		if i < len(lines)-1 {
			runs[len(runs)-1].Break = true
		}
		doc.AddParagraph(style, runs...)
	}
}

// BatchResult holds the outcome of a batch build run.
type BatchResult struct {
	Built   int
	Skipped int
	Failed  int
}

// Total returns the total number of reports processed.
func (r BatchResult) Total() int {
	return r.Built + r.Skipped + r.Failed
}

// HasFailures reports whether any reports failed to build.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BuildBatch processes every *.md report under cfg.ReportsDir, pairing
// each with the source file sharing its basename stem in cfg.SourcesDir.
// Per-file status goes to w; a report with no matching source is a
// per-file failure, not a fatal error. Unchanged reports are skipped via
// the manifest.
func BuildBatch(ctx context.Context, cfg types.BatchConfig, prof types.Profile, w io.Writer) (BatchResult, error) {
	var result BatchResult

	if _, err := os.Stat(cfg.TemplatePath); err != nil {
		return result, fmt.Errorf("template not found: %s", cfg.TemplatePath)
	}
	reports, err := filepath.Glob(filepath.Join(cfg.ReportsDir, "*.md"))
	if err != nil {
		return result, fmt.Errorf("scanning reports directory: %w", err)
	}
	sort.Strings(reports)

	manifestPath := cfg.ManifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join(cfg.OutDir, manifest.DefaultName)
	}
	m, err := manifest.Open(manifestPath)
	if err != nil {
		return result, err
	}
	defer m.Close()

	for _, reportPath := range reports {
		stem := strings.TrimSuffix(filepath.Base(reportPath), ".md")

		srcPath, ok := findSource(cfg.SourcesDir, stem)
		if !ok {
			fmt.Fprintf(w, "failed:  %s (no matching source in %s)\n", stem, cfg.SourcesDir)
			result.Failed++
			continue
		}

		bcfg := types.BuildConfig{
			MarkdownPath:  reportPath,
			SourcePath:    srcPath,
			TemplatePath:  cfg.TemplatePath,
			OutputPath:    filepath.Join(cfg.OutDir, stem+".docx"),
			IncludeSource: cfg.IncludeSource,
			Highlight:     cfg.Highlight,
		}

		fp, err := manifest.Fingerprint(bcfg, cfg.ProfilePath)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", stem, err)
			result.Failed++
			continue
		}
		needs, err := m.NeedsBuild(ctx, reportPath, fp, bcfg.OutputPath)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", stem, err)
			result.Failed++
			continue
		}
		if !needs {
			fmt.Fprintf(w, "skipped: %s (unchanged)\n", stem)
			result.Skipped++
			continue
		}

		if err := BuildReport(bcfg, prof, io.Discard); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", stem, err)
			result.Failed++
			continue
		}
		if err := m.Record(ctx, reportPath, fp, bcfg.OutputPath); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", stem, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "built:   %s -> %s\n", stem, bcfg.OutputPath)
		result.Built++
	}

	fmt.Fprintf(w, "\nBatch summary: %d built, %d skipped, %d failed (total: %d)\n",
		result.Built, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// findSource locates the source file pairing with a report stem: any file
// named <stem>.<ext> in dir, by sorted glob order, Markdown files excluded
// so a co-located report never pairs with itself. A bare <stem> file
// matches last.
func findSource(dir, stem string) (string, bool) {
	matches, _ := filepath.Glob(filepath.Join(dir, stem+".*"))
	sort.Strings(matches)
	for _, m := range matches {
		if filepath.Ext(m) == ".md" {
			continue
		}
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			return m, true
		}
	}
	bare := filepath.Join(dir, stem)
	if info, err := os.Stat(bare); err == nil && !info.IsDir() {
		return bare, true
	}
	return "", false
}
