// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"testing"
)

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]string
	}{
		{
			name: "two block-form sections",
			text: "### Título:\nHello\n### Descrição:\nWorld\n",
			want: map[string]string{"Título": "Hello", "Descrição": "World"},
		},
		{
			name: "single-line form",
			text: "### Título: Hello\n",
			want: map[string]string{"Título": "Hello"},
		},
		{
			name: "no heading markers",
			text: "plain prose\nwith lines\n",
			want: map[string]string{},
		},
		{
			name: "empty text",
			text: "",
			want: map[string]string{},
		},
		{
			name: "duplicate heading keeps later content",
			text: "### Título:\nfirst\n### Título:\nsecond\n",
			want: map[string]string{"Título": "second"},
		},
		{
			name: "crlf input normalized",
			text: "### Título:\r\nHello\r\n### Descrição:\r\nWorld\r\n",
			want: map[string]string{"Título": "Hello", "Descrição": "World"},
		},
		{
			name: "preamble before first heading dropped",
			text: "generated by tooling\n\n### Título:\nHello\n",
			want: map[string]string{"Título": "Hello"},
		},
		{
			name: "chunk without colon dropped",
			text: "### Título:\nHello\n### NoColonHere\nstuff\n",
			want: map[string]string{"Título": "Hello"},
		},
		{
			name: "multi-line content preserved",
			text: "### Descrição:\nline one\nline two\n\nline four\n",
			want: map[string]string{"Descrição": "line one\nline two\n\nline four"},
		},
		{
			name: "empty content after colon kept as empty",
			text: "### Título:\n",
			want: map[string]string{"Título": ""},
		},
		{
			name: "title and surrounding whitespace trimmed",
			text: "###   Fluxo de Execução  :  \n  steps here  \n",
			want: map[string]string{"Fluxo de Execução": "steps here"},
		},
		{
			name: "content with inner fenced block survives",
			text: "### Exemplo de Uso:\n```python\nrun()\n```\n",
			want: map[string]string{"Exemplo de Uso": "```python\nrun()\n```"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSections(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sections %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("section[%q] = %q, want %q", key, got[key], want)
				}
			}
		})
	}
}

func TestExtractFencedCode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		wantFind bool
	}{
		{
			name:     "language tag discarded",
			text:     "```python\nprint(1)\n```",
			want:     "print(1)",
			wantFind: true,
		},
		{
			name:     "no markers",
			text:     "just text, nothing fenced",
			wantFind: false,
		},
		{
			name:     "first of two blocks wins",
			text:     "```go\nfirst()\n```\nprose\n```go\nsecond()\n```\n",
			want:     "first()",
			wantFind: true,
		},
		{
			name:     "multi-line block with blank lines",
			text:     "before\n```\nline 1\n\n  indented\n```\nafter",
			want:     "line 1\n\n  indented",
			wantFind: true,
		},
		{
			name:     "trailing newlines stripped leading whitespace kept",
			text:     "```\n    padded()\n\n\n```",
			want:     "    padded()",
			wantFind: true,
		},
		{
			name:     "unclosed fence not found",
			text:     "```python\nprint(1)\n",
			wantFind: false,
		},
		{
			name:     "bare fence without language",
			text:     "```\nx = 1\n```",
			want:     "x = 1",
			wantFind: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractFencedCode(tt.text)
			if found != tt.wantFind {
				t.Fatalf("found = %v, want %v", found, tt.wantFind)
			}
			if got != tt.want {
				t.Errorf("code = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBulletItems(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "bullets with trailing prose line ignored",
			content: "- a\n- b\nnote",
			want:    []string{"a", "b"},
		},
		{
			name:    "no bullets",
			content: "first line\nsecond line",
			want:    nil,
		},
		{
			name:    "star and numbered markers are not bullets",
			content: "* one\n1. two\n- three",
			want:    []string{"three"},
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "item whitespace trimmed",
			content: "-   spaced out  ",
			want:    []string{"spaced out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BulletItems(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("item[%d] = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	text := "### Título:\nMy Script\n### Exemplo de Uso:\nRun it:\n```bash\n./run.sh\n```\n"
	rep := Parse(text)

	if got := rep.Sections["Título"]; got != "My Script" {
		t.Errorf("Título = %q, want %q", got, "My Script")
	}
	if !rep.HasCode {
		t.Fatal("expected a fenced block to be found")
	}
	if rep.Code != "./run.sh" {
		t.Errorf("Code = %q, want %q", rep.Code, "./run.sh")
	}
}

func TestParseNoCode(t *testing.T) {
	rep := Parse("### Título:\nPlain\n")
	if rep.HasCode {
		t.Error("HasCode = true, want false")
	}
	if rep.Code != "" {
		t.Errorf("Code = %q, want empty", rep.Code)
	}
}
