package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tododemo/internal/model"
)

// Seed files give a view its starting items. They are read once at startup
// and never written back.

// ErrUnsupportedFormat is returned for seed files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported seed format")

// Default is the demo list a fresh view starts with.
func Default() []model.Item {
	return []model.Item{
		{ID: 1, Text: "Learn Go", Completed: false},
		{ID: 2, Text: "Learn Bubble Tea", Completed: true},
		{ID: 3, Text: "Build the first project", Completed: false},
	}
}

// Load reads a list of items from a .json, .yaml or .yml file. Fields other
// than id, text and completed are rejected.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}

	var items []model.Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("json decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&items); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Resolve returns the items from path, or Default when path is empty.
func Resolve(path string) ([]model.Item, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
