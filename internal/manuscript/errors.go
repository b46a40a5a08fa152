package manuscript

import "errors"

// Domain errors for manuscript operations.
var (
	ErrContentDirMissing = errors.New("manuscript content directory not found")
)
