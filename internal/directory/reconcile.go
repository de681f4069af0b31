// Package directory turns raw customer, employee and place listings into deduplicated,
// filtered and summarised views. Nothing here performs I/O or mutates its input.
package directory

import "strings"

// Deduplicate keeps the first record seen for every key, preserving input order.
func Deduplicate[T any, K comparable](records []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(records))
	out := make([]T, 0, len(records))
	for _, record := range records {
		k := key(record)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, record)
	}
	return out
}

// FilterBySearch keeps records where any of the searchable fields contains term,
// ignoring case. A blank term means no filter and returns records unchanged.
func FilterBySearch[T any](records []T, term string, fields func(T) []string) []T {
	if strings.TrimSpace(term) == "" {
		return records
	}
	needle := strings.ToLower(term)
	return Filter(records, func(record T) bool {
		for _, field := range fields(record) {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	})
}

// Filter returns a new slice holding the records accepted by keep.
func Filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		if keep(record) {
			out = append(out, record)
		}
	}
	return out
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
