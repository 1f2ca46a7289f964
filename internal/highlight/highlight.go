// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package highlight turns source code into colored docx runs using chroma.
// Lexer selection is by filename first, content analysis second, plaintext
// last, so unrecognizable input degrades to uncolored text instead of
// failing the build.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/pdiddy/docforge/internal/docx"
)

// styleName selects the chroma color scheme. GitHub's light palette reads
// well on the white page of a Word document.
const styleName = "github"

// Lines tokenizes code and returns one run slice per source line, colored
// per the chroma style. An empty inner slice is an empty source line.
// filename may be empty; the report's own fenced blocks carry no filename
// and are matched by content analysis.
func Lines(filename, code string) [][]docx.Run {
	lexer := pickLexer(filename, code)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return PlainLines(code)
	}

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	var lines [][]docx.Run
	current := []docx.Run{}
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		color := ""
		if entry.Colour.IsSet() {
			color = strings.TrimPrefix(entry.Colour.String(), "#")
		}
		bold := entry.Bold == chroma.Yes

		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = []docx.Run{}
			}
			if part != "" {
				current = append(current, docx.Run{Text: part, Bold: bold, Color: color})
			}
		}
	}
	lines = append(lines, current)

	// Some lexers append a newline the input never had; drop the phantom
	// empty last line so output matches the source line count.
	if !strings.HasSuffix(code, "\n") && len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// PlainLines returns one uncolored run per source line, empty lines as
// empty slices. This is the non-highlighted code path.
func PlainLines(code string) [][]docx.Run {
	raw := strings.Split(code, "\n")
	lines := make([][]docx.Run, len(raw))
	for i, line := range raw {
		if line == "" {
			lines[i] = []docx.Run{}
			continue
		}
		lines[i] = []docx.Run{{Text: line}}
	}
	return lines
}

func pickLexer(filename, code string) chroma.Lexer {
	var lexer chroma.Lexer
	if filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
