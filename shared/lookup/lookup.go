// Package lookup holds the predicate helpers the derived read views are built from.
package lookup

import (
	"strings"
)

type Predicate[T any] func(T) bool

// All matches when every predicate matches. No predicates match everything.
func All[T any](preds ...Predicate[T]) func(T) bool {
	return func(item T) bool {
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				return false
			}
		}

		return true
	}
}

// Normalize trims and lowercases a search term.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// ContainsAny reports whether any field contains the already normalised needle.
func ContainsAny(needle string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// Take returns the first n items matching pred, in order.
func Take[T any](items []T, n int, pred func(T) bool) []T {
	out := []T{}

	for _, item := range items {
		if len(out) >= n {
			break
		}

		if pred(item) {
			out = append(out, item)
		}
	}

	return out
}

// Distinct returns the non-empty keys in first-seen order.
func Distinct[T any](items []T, key func(T) string) []string {
	seen := map[string]struct{}{}
	out := []string{}

	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, k)
	}

	return out
}

// EqualFold matches when want is empty or equal to got ignoring case.
func EqualFold(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}
