// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report parses semi-structured Markdown analysis reports: documents
// built from "### <Section>:" heading blocks with optional fenced code.
// Parsing is deliberately permissive: two ordered grammar attempts per
// chunk, silent drop on total mismatch, so a sloppy report still yields
// whatever sections it does declare.
package report

import (
	"regexp"
	"strings"

	"github.com/pdiddy/docforge/pkg/types"
)

var (
	// headingSplitRe divides the report at level-3 heading markers. The
	// optional leading newline keeps a marker at text start splitting
	// cleanly too.
	headingSplitRe = regexp.MustCompile(`\n?###\s+`)

	// blockFormRe matches the strict section form: a title terminated by a
	// colon on the first line, a line break, then the content.
	blockFormRe = regexp.MustCompile(`(?s)^([^:\n]+):\s*\n(.*)`)

	// inlineFormRe is the lenient fallback: title and content on one line,
	// everything after the colon accepted as content.
	inlineFormRe = regexp.MustCompile(`(?s)^([^:\n]+):\s*(.*)`)

	// fencedCodeRe captures the inner text of a fenced code block. The
	// language tag after the opening fence is discarded; the non-greedy
	// body pairs the opening fence with the nearest closing one.
	fencedCodeRe = regexp.MustCompile("(?s)```[^\n]*\n(.*?)```")
)

// SplitSections parses text into a title → content mapping per the heading
// grammar. Line endings are normalized to LF first. Preamble before the
// first heading and chunks matching neither grammar form are dropped
// silently; duplicate titles resolve last-write-wins. Text with no heading
// markers yields an empty mapping.
func SplitSections(text string) map[string]string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	sections := make(map[string]string)
	for _, chunk := range headingSplitRe.Split(normalized, -1) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		m := blockFormRe.FindStringSubmatch(chunk)
		if m == nil {
			m = inlineFormRe.FindStringSubmatch(chunk)
		}
		if m == nil {
			continue
		}

		title := strings.TrimSpace(m[1])
		content := strings.TrimSpace(m[2])
		sections[title] = content
	}
	return sections
}

// ExtractFencedCode returns the inner text of the first fenced code block in
// text and true, or "" and false when no block exists. Trailing newlines are
// stripped; leading and internal whitespace is preserved verbatim.
func ExtractFencedCode(text string) (string, bool) {
	m := fencedCodeRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimRight(m[1], "\n"), true
}

// BulletItems returns the "- " items in content, marker stripped. A line
// counts as a bullet when its trimmed form starts with "- "; the item text
// is the raw line sliced past the first two characters, then trimmed. Lines
// with other list markers ("* ", numbers) are not bullets. An empty result
// means the caller should render the content as plain prose instead.
func BulletItems(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "- ") {
			items = append(items, strings.TrimSpace(line[2:]))
		}
	}
	return items
}

// Parse runs both extractors over one report text and returns the combined
// result: the section mapping plus the first fenced block found anywhere in
// the raw text, independent of section boundaries.
func Parse(text string) types.Report {
	code, ok := ExtractFencedCode(text)
	return types.Report{
		Sections: SplitSections(text),
		Code:     code,
		HasCode:  ok,
	}
}
