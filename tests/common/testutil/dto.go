//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into a mutable JSON map so tests can send
// payloads the typed DTO cannot express.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets a dotted path such as "customer.email"; a nil value deletes it.
// Array elements are addressed by index: "items.0.quantity".
func Field(path string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		keys := strings.Split(path, ".")
		var node any = m
		for _, k := range keys[:len(keys)-1] {
			node = child(node, k)
			if node == nil {
				return
			}
		}
		leaf := keys[len(keys)-1]
		switch n := node.(type) {
		case map[string]any:
			if value == nil {
				delete(n, leaf)
			} else {
				n[leaf] = value
			}
		case []any:
			if i, ok := index(leaf, len(n)); ok {
				n[i] = value
			}
		}
	}
}

func child(node any, key string) any {
	switch n := node.(type) {
	case map[string]any:
		return n[key]
	case []any:
		if i, ok := index(key, len(n)); ok {
			return n[i]
		}
	}
	return nil
}

func index(key string, n int) (int, bool) {
	i := 0
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, false
		}
		i = i*10 + int(r-'0')
	}
	return i, key != "" && i < n
}
