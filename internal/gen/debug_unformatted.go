package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes source that go/format rejected to a sidecar
// next to the intended output, so the offending line can be inspected. It is
// best-effort and never replaces the formatting error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
