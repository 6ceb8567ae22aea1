// =============================================================================
// CSV to YAML Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser, xlsxparser, records (producers of rows)
//   - keys, selector (key discovery and selection)
//   - yamlwriter (rendering)
//   - converter (pipeline)
//
// =============================================================================

package types

// =============================================================================
// ROW TYPE
// =============================================================================

// Row is one record: a mapping from field name to raw string value that
// remembers the order its keys were added in.
//
// The zero value is an empty row ready to use.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow builds a row from parallel key and value slices.
// Keys past the end of values are skipped, so a short record yields a row
// with fewer keys. A repeated key keeps its first position and its last value.
func NewRow(keys, values []string) Row {
	var r Row
	for i, key := range keys {
		if i >= len(values) {
			break
		}
		r.Set(key, values[i])
	}
	return r
}

// Set stores value under key. New keys are appended to the key order.
func (r *Row) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (r Row) Get(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Value returns the value stored under key, or "" when the key is absent.
func (r Row) Value(key string) string {
	return r.values[key]
}

// Keys returns the row's keys in insertion order.
func (r Row) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of keys in the row.
func (r Row) Len() int {
	return len(r.keys)
}
