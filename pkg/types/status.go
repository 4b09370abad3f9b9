// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus is the outcome of converting one input file in a batch.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)
