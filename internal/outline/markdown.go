// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strings"
	"unicode"

	"github.com/pdiddy/xmind2md/pkg/types"
)

const indentUnit = "  "

// Markdown renders o as a Markdown outline. Top-level topics become level-2
// headings; deeper topics become nested bullets indented two spaces per
// level. The result ends with exactly one newline.
func Markdown(o Outline, labels types.Labels) string {
	labels = labels.WithDefaults()
	lines := []string{
		"# " + o.Title,
		"",
		labels.SourceSheet + ": " + o.Sheet,
		"",
	}

	if len(o.Topics) == 0 {
		lines = append(lines, "- "+labels.NoSubtopics)
		return finish(lines)
	}

	for _, n := range o.Topics {
		lines = append(lines, "## "+n.Title)
		if n.Note != "" {
			lines = append(lines, "", "> "+labels.Note+": "+n.Note)
		}
		if bullets := bulletLines(n, 0, labels); len(bullets) > 0 {
			lines = append(lines, "")
			lines = append(lines, bullets...)
		}
		lines = append(lines, "")
	}
	return finish(lines)
}

// bulletLines renders the children of n starting at depth. A child's note
// is a sub-bullet one level deeper, followed by the child's own children.
func bulletLines(n Node, depth int, labels types.Labels) []string {
	var lines []string
	indent := strings.Repeat(indentUnit, depth)
	for _, c := range n.Children {
		lines = append(lines, indent+"- "+c.Title)
		if c.Note != "" {
			lines = append(lines, indent+indentUnit+"- "+labels.Note+": "+c.Note)
		}
		lines = append(lines, bulletLines(c, depth+1, labels)...)
	}
	return lines
}

func finish(lines []string) string {
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace) + "\n"
}
