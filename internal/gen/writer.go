package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes a generated file to path, creating the parent directory
// if it doesn't exist.
func WriteFile(file *GeneratedFile, path string) error {
	if file == nil {
		return fmt.Errorf("writing %s: no generated file", path)
	}

	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(path, file.Content, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
