package cli

import (
	"github.com/aretw0/araignee/pkg/loader"
)

// LoadData reads an entity or world document (YAML, JSON or TOML).
// An empty path yields nil.
func LoadData(path string) (any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := loader.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}
