// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the .xmind to outline pipeline: validate the input
// path, load the archive, pick a sheet, render it, and write the result.
// Nothing is written until rendering has succeeded.
package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/xmind2md/internal/outline"
	"github.com/pdiddy/xmind2md/internal/xmind"
	"github.com/pdiddy/xmind2md/pkg/types"
)

// InputExt is the required input file extension, compared case-insensitively.
const InputExt = ".xmind"

// Converter turns an input file into rendered output bytes.
type Converter interface {
	Convert(inputPath string) ([]byte, error)
}

// OutlineConverter renders .xmind files with the outline package.
type OutlineConverter struct {
	cfg types.ConversionConfig
}

// NewOutlineConverter returns a converter using cfg's labels, format, and
// sheet override.
func NewOutlineConverter(cfg types.ConversionConfig) *OutlineConverter {
	return &OutlineConverter{cfg: cfg}
}

// Convert validates and loads inputPath, selects the sheet, and renders it.
func (c *OutlineConverter) Convert(inputPath string) ([]byte, error) {
	if err := ValidateInput(inputPath); err != nil {
		return nil, err
	}

	doc, err := xmind.Open(inputPath)
	if err != nil {
		return nil, err
	}

	sheet, err := c.pickSheet(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}

	o := outline.Build(sheet, c.cfg.OutlineConfig)
	return outline.Render(o, c.cfg.Format, c.cfg.Labels)
}

func (c *OutlineConverter) pickSheet(doc *types.Document) (types.Sheet, error) {
	if c.cfg.SheetRef != "" {
		return xmind.FindSheet(doc, c.cfg.SheetRef)
	}
	return xmind.SelectSheet(doc)
}

// ValidateInput checks that path exists, is a regular file, and carries the
// .xmind extension.
func ValidateInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input not found: %s: %w", path, types.ErrNotFound)
		}
		return fmt.Errorf("checking input %s: %v: %w", path, err, types.ErrIO)
	}
	if info.IsDir() {
		return fmt.Errorf("input is a directory: %s: %w", path, types.ErrFormat)
	}
	if !strings.EqualFold(filepath.Ext(path), InputExt) {
		return fmt.Errorf("input file is not %s: %s: %w", InputExt, path, types.ErrFormat)
	}
	return nil
}

// ConvertFile converts inputPath and writes the result to outputPath,
// replacing any existing file. It returns the absolute output path.
func ConvertFile(c Converter, inputPath, outputPath string) (string, error) {
	in, err := filepath.Abs(inputPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %v: %w", inputPath, err, types.ErrIO)
	}
	out, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %v: %w", outputPath, err, types.ErrIO)
	}

	data, err := c.Convert(in)
	if err != nil {
		return "", err
	}
	if err := WriteOutput(out, data); err != nil {
		return "", err
	}
	return out, nil
}

// WriteOutput writes data to path, creating parent directories. A new file
// is created with mode 0644 less the umask. An existing file is replaced
// through a temporary file renamed over it, so a failed write leaves it
// untouched; its mode is kept and a symlinked path is written through to its
// target.
func WriteOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %v: %w", dir, err, types.ErrIO)
	}

	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return writeNew(path, data)
	}
	if err != nil {
		return fmt.Errorf("resolving %s: %v: %w", path, err, types.ErrIO)
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("writing %s: %v: %w", path, err, types.ErrIO)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("writing %s: not a regular file: %w", path, types.ErrIO)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %v: %w", path, err, types.ErrIO)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmpName, info.Mode().Perm())
	}
	if werr == nil {
		werr = os.Rename(tmpName, target)
	}
	if werr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %v: %w", path, werr, types.ErrIO)
	}
	return nil
}

func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("writing %s: %v: %w", path, err, types.ErrIO)
	}
	_, werr := f.Write(data)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %v: %w", path, werr, types.ErrIO)
	}
	return nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BatchOptions controls where batch outputs go.
type BatchOptions struct {
	// OutputDir receives one output file per input.
	OutputDir string

	// Ext is the output extension, with leading dot (default ".md").
	Ext string

	// Force overwrites outputs that already exist instead of skipping them.
	Force bool
}

// OutputPath returns the output path for inputPath under opts.
func (opts BatchOptions) OutputPath(inputPath string) string {
	ext := opts.Ext
	if ext == "" {
		ext = types.FormatMarkdown.Extension()
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(opts.OutputDir, base+ext)
}

// ConvertOne converts a single file for a batch run, printing one status
// line to w. Existing outputs are skipped unless opts.Force is set.
func ConvertOne(c Converter, inputPath string, opts BatchOptions, w io.Writer) types.ConversionStatus {
	outPath := opts.OutputPath(inputPath)
	name := filepath.Base(inputPath)

	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			return types.ConversionSkipped
		}
	}

	data, err := c.Convert(inputPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return types.ConversionFailed
	}

	if err := WriteOutput(outPath, data); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", name, outPath)
	return types.ConversionDone
}

// ConvertBatch converts every input in order, printing per-file status to w
// and returning a summary.
func ConvertBatch(c Converter, inputs []string, opts BatchOptions, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		switch ConvertOne(c, in, opts, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionSkipped:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// FindInputs returns the .xmind files directly inside dir, sorted by name.
func FindInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input directory not found: %s: %w", dir, types.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %v: %w", dir, err, types.ErrIO)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), InputExt) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
