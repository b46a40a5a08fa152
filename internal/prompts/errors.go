package prompts

import "errors"

// Domain errors for prompt configuration and resolution.
var (
	ErrInvalidSource  = errors.New("invalid prompt configuration")
	ErrInvalidPattern = errors.New("invalid filename pattern")
	ErrPromptNotFound = errors.New("prompt not found in catalogue")
)
