package manuscript

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MetadataFile is the manuscript metadata document, relative to the
// content directory.
const MetadataFile = "metadata.yaml"

type metadata struct {
	Title    string   `yaml:"title"`
	Keywords []string `yaml:"keywords"`
}

// loadMetadata reads metadata.yaml from the content directory. Absence
// yields empty metadata, not an error; a malformed file is an error.
func loadMetadata(contentDir string) (metadata, error) {
	var meta metadata

	data, err := os.ReadFile(filepath.Join(contentDir, MetadataFile))
	if errors.Is(err, fs.ErrNotExist) {
		return meta, nil
	}
	if err != nil {
		return meta, err
	}

	if err := yaml.Unmarshal(data, &meta); err != nil {
		return meta, err
	}
	return meta, nil
}
