package settings

import (
	"maps"
	"slices"
	"strings"
)

// envSeparator separates the prefix from the key and nested keys from each
// other, e.g. APP__DATABASE__URL -> database.url.
const envSeparator = "__"

// envTree builds a key tree from the variables in environ that start with
// prefix followed by envSeparator. The prefix is matched case-insensitively
// and keys are lower-cased. Variables are applied in name order; when a key
// is both a value and a table, the table wins.
func envTree(prefix string, environ map[string]string) map[string]any {
	head := strings.ToLower(prefix + envSeparator)
	tree := make(map[string]any)

	for _, name := range slices.Sorted(maps.Keys(environ)) {
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, head) {
			continue
		}

		path := strings.Split(lower[len(head):], envSeparator)
		if slices.Contains(path, "") {
			continue
		}

		insertEnv(tree, path, environ[name])
	}

	return tree
}

func insertEnv(tree map[string]any, path []string, value string) {
	node := tree
	for _, key := range path[:len(path)-1] {
		child, ok := node[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[key] = child
		}
		node = child
	}

	last := path[len(path)-1]
	if _, isTable := node[last].(map[string]any); isTable {
		return
	}
	node[last] = value
}
