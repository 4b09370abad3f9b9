// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline turns a mind-map sheet into a text outline.
//
// Build walks the sheet once and produces an Outline whose titles and notes
// are already normalized and defaulted. Render then emits that tree as
// Markdown, HTML, YAML, or JSON.
package outline

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/xmind2md/pkg/types"
)

// Outline is the normalized, render-ready form of one sheet.
type Outline struct {
	// Title is the document heading: the root title, else the sheet
	// title, else the untitled label.
	Title string `json:"title" yaml:"title"`

	// Sheet is the source sheet title, or the untitled label.
	Sheet string `json:"sheet" yaml:"sheet"`

	// Topics are the root topic's children, attached then detached.
	Topics []Node `json:"topics" yaml:"topics"`
}

// Node is one topic in the outline.
type Node struct {
	Title    string `json:"title" yaml:"title"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Normalize collapses every run of whitespace, newlines included, into a
// single space and trims the result.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// builder carries the per-run settings through the recursive walk.
type builder struct {
	labels types.Labels
	nfc    bool
}

func (b builder) text(s string) string {
	if b.nfc {
		s = norm.NFC.String(s)
	}
	return Normalize(s)
}

func (b builder) title(s string) string {
	if t := b.text(s); t != "" {
		return t
	}
	return b.labels.Untitled
}

// Build converts sheet into an Outline using cfg's labels and normalization
// settings. Empty labels in cfg fall back to the defaults.
func Build(sheet types.Sheet, cfg types.OutlineConfig) Outline {
	b := builder{labels: cfg.Labels.WithDefaults(), nfc: cfg.NormalizeUnicode}
	root := sheet.Root()

	sheetTitle := b.title(string(sheet.Title))
	docTitle := b.text(string(root.Title))
	if docTitle == "" {
		docTitle = sheetTitle
	}

	return Outline{
		Title:  docTitle,
		Sheet:  sheetTitle,
		Topics: b.nodes(root),
	}
}

// nodes returns the converted children of t. Recursion depth equals the
// mind map's depth, which authoring tools keep shallow.
func (b builder) nodes(t types.Topic) []Node {
	children := t.ChildTopics()
	if len(children) == 0 {
		return nil
	}
	out := make([]Node, 0, len(children))
	for _, c := range children {
		out = append(out, Node{
			Title:    b.title(string(c.Title)),
			Note:     b.text(c.Note()),
			Children: b.nodes(c),
		})
	}
	return out
}

// Render emits o in the requested format. An empty format means Markdown.
func Render(o Outline, format types.OutputFormat, labels types.Labels) ([]byte, error) {
	labels = labels.WithDefaults()
	switch format {
	case types.FormatMarkdown, "":
		return []byte(Markdown(o, labels)), nil
	case types.FormatHTML:
		return HTML(o, labels)
	case types.FormatYAML:
		return YAML(o)
	case types.FormatJSON:
		return JSON(o)
	default:
		return nil, fmt.Errorf("unsupported output format %q: use markdown, html, yaml, or json: %w", format, types.ErrFormat)
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "md":
		return types.FormatMarkdown, nil
	case "yml":
		return types.FormatYAML, nil
	case types.FormatMarkdown, types.FormatHTML, types.FormatYAML, types.FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: use markdown, html, yaml, or json: %w", s, types.ErrFormat)
	}
}
