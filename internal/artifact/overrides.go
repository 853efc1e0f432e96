package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// LoadOverrides reads an optional cluster-name override file: a JSON map
// from cluster ID to a manually chosen name, as in {"0": "Budget"}.
// A missing file is not an error; the pipeline does not require it.
func LoadOverrides(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}

	overrides := make(map[int]string, len(raw))
	for key, name := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: override key %q is not a cluster id", domain.ErrInvalidInput, key)
		}
		overrides[id] = name
	}
	return overrides, nil
}

// ApplyOverrides replaces cluster names in place. Overrides for unknown
// cluster IDs and empty names are ignored.
func ApplyOverrides(a *domain.Artifact, overrides map[int]string) {
	if a == nil || len(overrides) == 0 {
		return
	}
	for i := range a.Clusters {
		if name, ok := overrides[a.Clusters[i].ID]; ok && name != "" {
			a.Clusters[i].Name = name
		}
	}
}
