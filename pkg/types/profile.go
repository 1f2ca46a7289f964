// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StyleSet names the paragraph styles looked up in the Word template.
// Every lookup falls back silently to the template's default style when
// the name is absent, so none of these are required to exist.
type StyleSet struct {
	// Title styles the document title paragraph (e.g. "DocTitle").
	Title string `json:"title" yaml:"title"`

	// Normal styles plain prose paragraphs (e.g. "NormalText").
	Normal string `json:"normal" yaml:"normal"`

	// Code styles code block lines (e.g. "CodeBlock").
	Code string `json:"code" yaml:"code"`

	// List styles bullet item paragraphs (e.g. "List Paragraph").
	List string `json:"list" yaml:"list"`
}

// Profile describes the section grammar of one report flavor: which heading
// titles are expected, in what presentation order, and how each renders.
// The key set is advisory for assembly only; the splitter itself accepts
// any heading title.
type Profile struct {
	// Name identifies the profile in status output.
	Name string `json:"name" yaml:"name"`

	// SectionKeys lists the expected heading titles in presentation order.
	SectionKeys []string `json:"section_keys" yaml:"section_keys"`

	// ListKeys is the subset of SectionKeys rendered as bullet lists when
	// their content carries "- " lines.
	ListKeys []string `json:"list_keys" yaml:"list_keys"`

	// TitleKey is the section whose content becomes the document title.
	TitleKey string `json:"title_key" yaml:"title_key"`

	// ExampleKey is the section whose fenced block, when present, renders
	// as a code block instead of prose.
	ExampleKey string `json:"example_key" yaml:"example_key"`

	// AnnexHeading is the heading placed above the appended source file.
	AnnexHeading string `json:"annex_heading" yaml:"annex_heading"`

	// Styles names the template styles used during assembly.
	Styles StyleSet `json:"styles" yaml:"styles"`
}

// IsListKey reports whether key renders as a bullet list.
func (p Profile) IsListKey(key string) bool {
	for _, k := range p.ListKeys {
		if k == key {
			return true
		}
	}
	return false
}
