package editor

import "errors"

// Sentinel errors for revision operations.
var (
	ErrResolveFailed = errors.New("prompt resolution failed")
	ErrReviseFailed  = errors.New("revision failed")
	ErrWriteFailed   = errors.New("failed to write output file")

	// ErrStructuralMismatch reports that reassembly did not reproduce the
	// input's structural lines. It indicates an internal invariant
	// violation and is never swallowed.
	ErrStructuralMismatch = errors.New("structural lines not preserved on reassembly")
)
