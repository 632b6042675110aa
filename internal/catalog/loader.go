package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// maxCatalogSize is the maximum allowed size for a catalog file (1MB).
const maxCatalogSize = 1 << 20

// Load reads a catalog from a JSON file. The file replaces the built-in
// command set wholesale; there is no merging.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	if len(data) > maxCatalogSize {
		return Catalog{}, fmt.Errorf("catalog file too large: %d bytes (max %d)", len(data), maxCatalogSize)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(cat.Commands) == 0 {
		return Catalog{}, fmt.Errorf("catalog file %s declares no commands", path)
	}
	return cat, nil
}

// Source resolves the catalog for the bridge: the file at path when set,
// otherwise the built-in notebook command set.
func Source(path string) (Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	return Load(path)
}
