package settings

import (
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-service-core/errs"
)

type override struct {
	key   string
	value any
}

// sourceBuilder collects key trees from the configured sources and merges
// them in the order they were added. The first failing source stops the
// chain and its error is returned from build.
type sourceBuilder struct {
	layers    []map[string]any
	overrides []override
	err       error
}

func newSourceBuilder() *sourceBuilder {
	return &sourceBuilder{
		layers: make([]map[string]any, 0, 2),
	}
}

func (b *sourceBuilder) build() (map[string]any, error) {
	if b.err != nil {
		return nil, b.err
	}

	tree := make(map[string]any)
	for _, layer := range b.layers {
		if err := mergo.Merge(&tree, layer, mergo.WithOverride); err != nil {
			return nil, errs.Wrap(errs.KindConfig, fmt.Errorf("failed to build config: %w", err))
		}
	}

	for _, o := range b.overrides {
		if err := setPath(tree, o.key, o.value); err != nil {
			return nil, errs.Wrap(errs.KindConfig, fmt.Errorf("failed to set %s: %w", o.key, err))
		}
	}

	return tree, nil
}

func (b *sourceBuilder) withFile(location string) *sourceBuilder {
	if b.err != nil {
		return b
	}

	tree, err := parseFile(location)
	if err != nil {
		b.err = err
		return b
	}

	b.layers = append(b.layers, tree)
	return b
}

func (b *sourceBuilder) withEnv(prefix string, environ map[string]string) *sourceBuilder {
	if b.err != nil {
		return b
	}

	b.layers = append(b.layers, envTree(prefix, environ))
	return b
}

// withOverride sets key (dot-separated) after all layers are merged.
func (b *sourceBuilder) withOverride(key string, value any) *sourceBuilder {
	b.overrides = append(b.overrides, override{key: key, value: value})
	return b
}

// setPath stores value at the dot-separated path, creating missing tables.
// It fails when an intermediate key already holds a non-table value.
func setPath(tree map[string]any, path string, value any) error {
	keys := strings.Split(path, ".")
	node := tree

	for _, key := range keys[:len(keys)-1] {
		next, ok := node[key]
		if !ok || next == nil {
			child := make(map[string]any)
			node[key] = child
			node = child
			continue
		}

		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q holds a %T, not a table", key, next)
		}
		node = child
	}

	node[keys[len(keys)-1]] = value
	return nil
}
