package providers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// extensions are tried in order; the first existing file wins.
// JSON is read through the YAML decoder, YAML being a superset.
var extensions = []string{".yaml", ".yml", ".json"}

// fileHandler reads one collection (e.g. "events") from the data directory.
type fileHandler struct {
	basePath string
	name     string
}

func newFileHandler(basePath, name string) *fileHandler {
	return &fileHandler{basePath: basePath, name: name}
}

// Filename returns the first existing file for the collection, or the empty
// string if there is none.
func (h *fileHandler) Filename() (string, error) {
	for _, ext := range extensions {
		filename := path.Join(h.basePath, h.name+ext)
		_, err := os.Stat(filename)
		switch {
		case err == nil:
			return filename, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", fmt.Errorf("could not stat '%s' (%w)", filename, err)
		}
	}
	return "", nil
}

// readInto decodes the collection's file into target.
// found is false (and target untouched) if no file exists.
func (h *fileHandler) readInto(target any) (found bool, err error) {
	filename, err := h.Filename()
	if err != nil {
		return false, err
	}
	if filename == "" {
		return false, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return true, fmt.Errorf("could not read '%s' (%w)", filename, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return true, fmt.Errorf("could not parse '%s' (%w)", filename, err)
	}
	return true, nil
}
