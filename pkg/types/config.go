// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the rendered output format.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatYAML     OutputFormat = "yaml"
	FormatJSON     OutputFormat = "json"
)

// Extension returns the file extension, with leading dot, used for outputs
// of this format. Unknown formats fall back to ".md".
func (f OutputFormat) Extension() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatYAML:
		return ".yaml"
	case FormatJSON:
		return ".json"
	default:
		return ".md"
	}
}

// Labels holds the fixed strings the outline renderer emits. The defaults
// are the Chinese strings used by earlier exports.
type Labels struct {
	// Untitled replaces empty topic and sheet titles.
	Untitled string `json:"untitled" yaml:"untitled" mapstructure:"untitled"`

	// NoSubtopics is the bullet emitted when the root topic has no children.
	NoSubtopics string `json:"no_subtopics" yaml:"no_subtopics" mapstructure:"no_subtopics"`

	// SourceSheet prefixes the line naming the rendered sheet.
	SourceSheet string `json:"source_sheet" yaml:"source_sheet" mapstructure:"source_sheet"`

	// Note prefixes every note line.
	Note string `json:"note" yaml:"note" mapstructure:"note"`
}

// DefaultLabels returns the built-in label set.
func DefaultLabels() Labels {
	return Labels{
		Untitled:    "未命名主题",
		NoSubtopics: "无子主题",
		SourceSheet: "来源工作表",
		Note:        "备注",
	}
}

// WithDefaults returns l with every empty label replaced by its default.
func (l Labels) WithDefaults() Labels {
	d := DefaultLabels()
	if l.Untitled == "" {
		l.Untitled = d.Untitled
	}
	if l.NoSubtopics == "" {
		l.NoSubtopics = d.NoSubtopics
	}
	if l.SourceSheet == "" {
		l.SourceSheet = d.SourceSheet
	}
	if l.Note == "" {
		l.Note = d.Note
	}
	return l
}

// OutlineConfig holds settings for the outline renderer.
type OutlineConfig struct {
	// Labels are the fixed strings emitted in the outline.
	Labels Labels `json:"labels" yaml:"labels" mapstructure:"labels"`

	// Format selects markdown, html, yaml, or json (default markdown).
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// NormalizeUnicode applies NFC normalization to titles and notes before
	// whitespace collapsing.
	NormalizeUnicode bool `json:"normalize_unicode" yaml:"normalize_unicode" mapstructure:"normalize_unicode"`
}

// ConversionConfig holds settings for the convert and batch commands.
type ConversionConfig struct {
	OutlineConfig `yaml:",inline" mapstructure:",squash"`

	// SheetRef overrides active-sheet selection with a sheet ID or title.
	SheetRef string `json:"sheet,omitempty" yaml:"sheet,omitempty" mapstructure:"sheet"`

	// Force makes batch conversion overwrite outputs that already exist.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}
