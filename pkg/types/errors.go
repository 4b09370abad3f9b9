// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error classes. Every stage wraps one of these with context via
// fmt.Errorf("...: %w", ...) so callers can test with errors.Is.
var (
	// ErrFormat marks input that is not a usable .xmind document: wrong
	// extension, missing content.json, or a payload of the wrong shape.
	ErrFormat = errors.New("invalid xmind format")

	// ErrNotFound marks a missing input path or an unknown sheet reference.
	ErrNotFound = errors.New("not found")

	// ErrIO marks an archive that cannot be opened or read, or an output
	// that cannot be written.
	ErrIO = errors.New("i/o error")
)
