package content

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var contentFS embed.FS

// Load reads a content file, preferring an on-disk copy under content/ (so
// edits show up with hot reload) and falling back to the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanContentPath(name)
	if data, err := os.ReadFile(diskContentPath(clean)); err == nil {
		return data, nil
	}
	return contentFS.ReadFile(clean)
}

func cleanContentPath(path string) string {
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "content/")
}

func diskContentPath(clean string) string {
	return filepath.Join("content", filepath.FromSlash(clean))
}
