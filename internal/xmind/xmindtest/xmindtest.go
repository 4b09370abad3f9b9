// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xmindtest builds .xmind fixtures for tests.
package xmindtest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Archive returns a zip archive holding the given entries. Entry names are
// written in sorted order so fixtures are deterministic.
func Archive(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(entries[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// Write creates dir/name as a zip archive holding entries and returns its path.
func Write(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, Archive(t, entries), 0o644))
	return path
}

// Content returns entries for a document whose content.json is content and
// which has no metadata.json.
func Content(content string) map[string]string {
	return map[string]string{"content.json": content}
}

// WithMetadata returns entries for a document with both content.json and
// metadata.json.
func WithMetadata(content, metadata string) map[string]string {
	return map[string]string{
		"content.json":  content,
		"metadata.json": metadata,
	}
}

// PlanSheet is a single-sheet document: an untitled root with one attached
// child "Plan" carrying the note "due soon".
const PlanSheet = `[{
	"id": "s1",
	"title": "Sheet 1",
	"rootTopic": {
		"title": "",
		"children": {
			"attached": [
				{"title": "Plan", "notes": {"plain": {"content": "due soon"}}}
			]
		}
	}
}]`

// PlanMarkdown is the Markdown rendering of PlanSheet with default labels.
const PlanMarkdown = "# Sheet 1\n\n来源工作表: Sheet 1\n\n## Plan\n\n> 备注: due soon\n"
