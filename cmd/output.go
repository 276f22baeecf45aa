package main

import (
	"os"
	"path/filepath"
	"strings"

	"userscraper/internal/instagram"
)

// writeList writes one username per line and returns the file path.
func writeList(dir, name string, nodes []instagram.EdgeNode) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Username)
		b.WriteByte('\n')
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
