package models

import "errors"

// Domain errors for model collaborators.
var (
	ErrModelFailed = errors.New("model revision failed")
)
