//go:build unit || e2e

package testutil

import (
	"strconv"
	"strings"
)

// Field sets key to value, or deletes it when value is nil. A dotted key
// walks nested objects and array indexes, e.g. "passenger_details.0.first_name".
// Missing intermediate steps leave m unchanged.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		path := strings.Split(key, ".")
		var cur any = m
		for _, step := range path[:len(path)-1] {
			cur = child(cur, step)
			if cur == nil {
				return
			}
		}
		set(cur, path[len(path)-1], value)
	}
}

func child(node any, step string) any {
	switch n := node.(type) {
	case map[string]any:
		return n[step]
	case []any:
		if i, err := strconv.Atoi(step); err == nil && i >= 0 && i < len(n) {
			return n[i]
		}
	}
	return nil
}

func set(node any, step string, value any) {
	switch n := node.(type) {
	case map[string]any:
		if value == nil {
			delete(n, step)
			return
		}
		n[step] = value
	case []any:
		if i, err := strconv.Atoi(step); err == nil && i >= 0 && i < len(n) {
			n[i] = value
		}
	}
}
