package editor

import (
	"log/slog"

	"github.com/JaimeStill/quill/internal/manuscript"
	"github.com/JaimeStill/quill/internal/models"
	"github.com/JaimeStill/quill/internal/prompts"
)

// Runtime bundles the dependencies that revision nodes require. It is
// constructed once per Editor and is read-only for the life of a run.
type Runtime struct {
	Manuscript *manuscript.Manuscript
	Resolver   *prompts.Resolver
	Model      models.Model
	Logger     *slog.Logger
}
