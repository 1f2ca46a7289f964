// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BuildConfig holds the inputs and options for a single report build.
type BuildConfig struct {
	// MarkdownPath is the Markdown report file.
	MarkdownPath string `json:"markdown_path" yaml:"markdown_path"`

	// SourcePath is the companion source-code file.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// TemplatePath is the Word template (.docx) carrying style definitions.
	TemplatePath string `json:"template_path" yaml:"template_path"`

	// OutputPath is the .docx file to write. Parent directories are
	// created as needed.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// IncludeSource appends the full source file under the annex heading.
	IncludeSource bool `json:"include_source" yaml:"include_source"`

	// Highlight renders code blocks with syntax coloring instead of
	// plain template-styled text.
	Highlight bool `json:"highlight" yaml:"highlight"`
}

// BatchConfig holds the inputs and options for a directory batch build.
type BatchConfig struct {
	// ReportsDir is scanned for *.md report files.
	ReportsDir string `json:"reports_dir" yaml:"reports_dir"`

	// SourcesDir is scanned for source files pairing with reports by
	// basename stem.
	SourcesDir string `json:"sources_dir" yaml:"sources_dir"`

	// TemplatePath is the shared Word template for every report.
	TemplatePath string `json:"template_path" yaml:"template_path"`

	// OutDir receives one <stem>.docx per report.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// ManifestPath is the SQLite build manifest. Empty selects
	// <OutDir>/.docforge.db.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`

	// IncludeSource and Highlight apply to every report in the batch.
	IncludeSource bool `json:"include_source" yaml:"include_source"`
	Highlight     bool `json:"highlight" yaml:"highlight"`

	// ProfilePath records which profile file was loaded, for manifest
	// fingerprinting. Empty means the built-in default profile.
	ProfilePath string `json:"profile_path,omitempty" yaml:"profile_path,omitempty"`
}
