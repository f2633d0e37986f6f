// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error taxonomy for the pipeline. Fatal errors abort the run; only
// ErrMalformedInput is recovered, by skipping the offending file.
var (
	// ErrInputNotFound reports a missing or unreadable input directory.
	ErrInputNotFound = errors.New("input directory not found")

	// ErrMalformedInput reports a source file that is not well-formed XML.
	// The caller skips the file and continues the run.
	ErrMalformedInput = errors.New("malformed input")

	// ErrWriteOutput reports an unwritable output destination.
	ErrWriteOutput = errors.New("cannot write output")
)
