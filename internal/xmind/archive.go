// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xmind reads .xmind archives and selects the sheet to render.
//
// An .xmind file is a zip archive. The topic tree lives in content.json as a
// JSON array of sheets; metadata.json optionally records which sheet was
// active when the file was saved. Legacy XML-only archives (content.xml) are
// rejected with types.ErrFormat.
package xmind

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/xmind2md/pkg/types"
)

const (
	contentEntry  = "content.json"
	metadataEntry = "metadata.json"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Open reads the .xmind archive at path.
func Open(path string) (*types.Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %v: %w", path, err, types.ErrIO)
	}
	defer zr.Close()

	doc, err := decode(&zr.Reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Read decodes an .xmind archive from r.
func Read(r io.ReaderAt, size int64) (*types.Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %v: %w", err, types.ErrIO)
	}
	return decode(zr)
}

func decode(zr *zip.Reader) (*types.Document, error) {
	content, ok, err := readEntry(zr, contentEntry)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("unsupported xmind: %s not found: %w", contentEntry, types.ErrFormat)
	}

	sheets, err := decodeSheets(content)
	if err != nil {
		return nil, err
	}

	doc := &types.Document{Sheets: sheets}

	meta, ok, err := readEntry(zr, metadataEntry)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(trimJSON(meta), &doc.Metadata); err != nil {
			return nil, fmt.Errorf("invalid %s: %v: %w", metadataEntry, err, types.ErrFormat)
		}
	}

	return doc, nil
}

// decodeSheets requires the payload to be a JSON array before decoding it,
// so an object or scalar payload is reported as a shape error rather than a
// generic decode failure.
func decodeSheets(data []byte) ([]types.Sheet, error) {
	data = trimJSON(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("invalid %s format: top-level value is not an array: %w", contentEntry, types.ErrFormat)
	}

	var sheets []types.Sheet
	if err := json.Unmarshal(data, &sheets); err != nil {
		return nil, fmt.Errorf("invalid %s format: %v: %w", contentEntry, err, types.ErrFormat)
	}
	return sheets, nil
}

// readEntry returns the contents of the named entry and whether it exists.
func readEntry(zr *zip.Reader, name string) ([]byte, bool, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, true, fmt.Errorf("opening %s: %v: %w", name, err, types.ErrIO)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, true, fmt.Errorf("reading %s: %v: %w", name, err, types.ErrIO)
		}
		return data, true, nil
	}
	return nil, false, nil
}

func trimJSON(data []byte) []byte {
	return bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
}
