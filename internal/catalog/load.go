package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a catalog from a JSON file and validates it. The schema is
// the JSON form of the Catalog struct. Any integrity violation is returned as
// an error so the caller can refuse to start.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &cat, nil
}
