// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Report is the parsed form of a Markdown analysis report: the section
// mapping produced by the heading grammar plus the first fenced code block
// found anywhere in the raw text, independent of section boundaries.
type Report struct {
	// Sections maps heading titles to their raw, trimmed content.
	// Duplicate headings resolve last-write-wins.
	Sections map[string]string `json:"sections" yaml:"sections"`

	// Code is the inner text of the first fenced code block in the raw
	// report, trailing newlines stripped. Empty when HasCode is false.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`

	// HasCode reports whether any fenced code block was found. A missing
	// block is an expected condition, not an error.
	HasCode bool `json:"has_code" yaml:"has_code"`
}

// Section returns the content stored under key and whether it is non-empty.
func (r Report) Section(key string) (string, bool) {
	content, ok := r.Sections[key]
	if !ok || content == "" {
		return "", false
	}
	return content, true
}
