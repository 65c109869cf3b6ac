package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/araignee/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", domain.InvalidArgument("unsupported file extension %q", filepath.Ext(path))
}

// Decode parses data into a generic mapping.
func Decode(data []byte, format Format) (map[string]any, error) {
	out := make(map[string]any)
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &out)
	case FormatJSON:
		err = json.Unmarshal(data, &out)
	case FormatTOML:
		err = toml.Unmarshal(data, &out)
	default:
		return nil, domain.InvalidArgument("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidArgument, format, err)
	}
	return out, nil
}

// DecodeFile reads and parses the file at path, inferring its format.
func DecodeFile(path string) (map[string]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(data, format)
}
