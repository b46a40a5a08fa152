// Package manuscript implements the manuscript domain for Quill.
// A manuscript is a content directory of Markdown files plus optional
// metadata supplying the title and keywords interpolated into prompts.
package manuscript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manuscript represents a manuscript rooted at a content directory.
// Title and Keywords come from metadata.yaml and may be empty when the
// file is absent. The zero values are valid: metadata is optional,
// the content directory is not.
type Manuscript struct {
	ContentDir string
	Title      string
	Keywords   []string
}

// Load opens a manuscript at contentDir, reading metadata once.
// A missing content directory is an error; missing metadata is not.
func Load(contentDir string) (*Manuscript, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrContentDirMissing, contentDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrContentDirMissing, contentDir)
	}

	meta, err := loadMetadata(contentDir)
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}

	return &Manuscript{
		ContentDir: contentDir,
		Title:      meta.Title,
		Keywords:   meta.Keywords,
	}, nil
}

// Files returns the manuscript's Markdown filenames in lexical order.
func (m *Manuscript) Files() ([]string, error) {
	entries, err := os.ReadDir(m.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".md") {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// Path returns the absolute-or-relative path of a manuscript file.
func (m *Manuscript) Path(filename string) string {
	return filepath.Join(m.ContentDir, filename)
}

// ReadLines reads a manuscript file and splits it into lines without
// newline terminators. A trailing newline on the file does not produce
// a trailing empty line.
func (m *Manuscript) ReadLines(filename string) ([]string, error) {
	data, err := os.ReadFile(m.Path(filename))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
