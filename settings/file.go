package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-service-core/errs"
)

type decodeFunc func(data []byte) (map[string]any, error)

var decoders = map[string]decodeFunc{
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
}

// probeOrder is the extension order tried for a location without one.
var probeOrder = []string{".json", ".yaml", ".yml", ".toml"}

// parseFile reads the required configuration file at location into a key
// tree. A missing or unreadable file is an IO error; bad syntax is a config
// error.
func parseFile(location string) (map[string]any, error) {
	path, decode, err := resolveFile(location)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.IO(err)
	}

	tree, err := decode(data)
	if err != nil {
		return nil, errs.Wrap(errs.KindConfig, fmt.Errorf("failed to build config: %s: %w", path, err))
	}
	if tree == nil {
		tree = make(map[string]any)
	}

	return tree, nil
}

// resolveFile picks the file and decoder for location. A known extension is
// used as-is; otherwise each extension in probeOrder is appended in turn.
func resolveFile(location string) (string, decodeFunc, error) {
	if decode, ok := decoders[strings.ToLower(filepath.Ext(location))]; ok {
		return location, decode, nil
	}

	for _, ext := range probeOrder {
		candidate := location + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, decoders[ext], nil
		}
	}

	if _, err := os.Stat(location); err != nil {
		return "", nil, errs.IO(err)
	}

	return "", nil, errs.Config(fmt.Sprintf("unsupported configuration file format: %s", location))
}

func decodeJSON(data []byte) (map[string]any, error) {
	var tree map[string]any
	if len(bytes.TrimSpace(data)) == 0 {
		return tree, nil
	}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
