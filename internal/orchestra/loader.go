package orchestra

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fixdict-generator/dictionary"
)

// LoadFile loads an orchestration from path, choosing the format from the
// file extension.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read orchestration %s: %w", path, err)
	}

	var m *Model

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		m, err = ParseXML(data)
	case ".yaml", ".yml":
		m, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load orchestration %s: %w", path, err)
	}

	return m, nil
}

func parsePresence(s string) (dictionary.Presence, error) {
	p, err := dictionary.ParsePresence(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPresence, err)
	}

	return p, nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
