// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xmind

import (
	"fmt"
	"strings"

	"github.com/pdiddy/xmind2md/pkg/types"
)

// SelectSheet returns the sheet to render: the first sheet whose ID equals
// the metadata's active sheet ID, else the first sheet. An unmatched active
// ID falls back silently.
func SelectSheet(doc *types.Document) (types.Sheet, error) {
	if doc == nil || len(doc.Sheets) == 0 {
		return types.Sheet{}, fmt.Errorf("%s is empty: %w", contentEntry, types.ErrFormat)
	}
	if id := doc.Metadata.ActiveSheetID; id != "" {
		for _, s := range doc.Sheets {
			if s.ID == id {
				return s, nil
			}
		}
	}
	return doc.Sheets[0], nil
}

// FindSheet resolves an explicit sheet reference. ref is matched against
// sheet IDs first, then against whitespace-normalized sheet titles.
func FindSheet(doc *types.Document, ref string) (types.Sheet, error) {
	if doc == nil || len(doc.Sheets) == 0 {
		return types.Sheet{}, fmt.Errorf("%s is empty: %w", contentEntry, types.ErrFormat)
	}
	for _, s := range doc.Sheets {
		if s.ID == ref {
			return s, nil
		}
	}
	want := strings.Join(strings.Fields(ref), " ")
	for _, s := range doc.Sheets {
		if strings.Join(strings.Fields(string(s.Title)), " ") == want {
			return s, nil
		}
	}
	return types.Sheet{}, fmt.Errorf("sheet %q: %w", ref, types.ErrNotFound)
}

// SheetSummary describes one sheet for listing.
type SheetSummary struct {
	Index  int    `json:"index" yaml:"index"`
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Root   string `json:"root" yaml:"root"`
	Topics int    `json:"topics" yaml:"topics"`
	Active bool   `json:"active" yaml:"active"`
}

// Summaries lists every sheet in document order. Active marks the sheet
// SelectSheet would pick.
func Summaries(doc *types.Document) []SheetSummary {
	if doc == nil {
		return nil
	}
	selected, err := SelectSheet(doc)
	hasSelected := err == nil

	out := make([]SheetSummary, 0, len(doc.Sheets))
	picked := false
	for i, s := range doc.Sheets {
		root := s.Root()
		active := hasSelected && !picked && s.ID == selected.ID
		if active {
			picked = true
		}
		out = append(out, SheetSummary{
			Index:  i,
			ID:     s.ID,
			Title:  string(s.Title),
			Root:   string(root.Title),
			Topics: len(root.ChildTopics()),
			Active: active,
		})
	}
	return out
}
