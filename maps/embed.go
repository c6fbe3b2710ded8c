package maps

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
)

//go:embed *.json
var mapsFS embed.FS

// Load reads an embedded map by name (basename, .json optional).
func Load(name string) (*TileMap, error) {
	clean := cleanMapPath(name)
	b, err := mapsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("maps: read %s: %w", clean, err)
	}
	return unmarshalTileMap(strings.TrimSuffix(clean, ".json"), b)
}

func cleanMapPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "maps/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
