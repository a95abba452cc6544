// Package artifact persists API responses to local disk as pretty-printed JSON.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Indent is the indentation used for persisted and printed JSON.
const Indent = "  "

// Pretty re-indents raw JSON with two spaces. Key order and string escapes of
// the input are kept as they are.
func Pretty(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", Indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores raw JSON at path, pretty-printed and UTF-8 encoded, replacing
// any previous file. Missing parent directories are created.
func Write(path string, raw []byte) error {
	if path == "" {
		return fmt.Errorf("artifact: empty output path")
	}
	pretty, err := Pretty(raw)
	if err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("artifact: %w", err)
		}
	}
	if err := os.WriteFile(path, pretty, 0o644); err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	return nil
}
