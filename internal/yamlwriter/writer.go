// =============================================================================
// CSV to YAML Converter - YAML Writer Module
// =============================================================================
//
// This module renders rows as a YAML document of numbered input blocks.
//
// YAML STRUCTURE:
//   One block per row, in row order. Each block is a header line followed by
//   one line per selected key, in the order the keys are given:
//
//   input0:
//     url: "http://x"
//     name: "Example X"
//   input1:
//     url: "http://y"
//     name: ""                 <- key missing from this row
//
// VALUE NORMALISATION (applied to every value, in this order):
//   1. Missing or empty value -> ""
//   2. Trim surrounding whitespace
//   3. Drop one leading " or ', drop one trailing " or ' (independently)
//   4. Escape \ as \\, then " as \"
//   5. Wrap in double quotes
//
// Lines are joined with "\n" and the document has no trailing newline.
//
// =============================================================================

package yamlwriter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
)

// BlockPrefix starts the header line of every block.
const BlockPrefix = "input"

// indent precedes every value line.
const indent = "  "

// =============================================================================
// FORMATTING FUNCTIONS
// =============================================================================

// Format renders rows as YAML blocks containing the given keys.
//
// PARAMETERS:
//   - rows: The records to render. One block is produced per row.
//   - keys: The keys to emit in every block, in output order. A key missing
//     from a row renders as "". With no keys each block is a lone header.
//
// RETURNS:
//   - The YAML text, without a trailing newline.
func Format(rows []types.Row, keys []string) string {
	blocks := make([]string, len(rows))
	for i, row := range rows {
		blocks[i] = formatBlock(i, row.Value, keys)
	}
	return strings.Join(blocks, "\n")
}

// FormatValue renders a dynamically typed row collection.
//
// Accepted collections are []types.Row, []map[string]string,
// []map[string]any and []any. Elements of []any that are not mappings render
// as rows without keys. Any other value is not a sequence and fails with a
// KindType error before anything is rendered.
func FormatValue(v any, keys []string) (string, error) {
	var lookups []func(string) string

	switch rows := v.(type) {
	case []types.Row:
		return Format(rows, keys), nil
	case []map[string]string:
		for _, row := range rows {
			lookups = append(lookups, stringMapLookup(row))
		}
	case []map[string]any:
		for _, row := range rows {
			lookups = append(lookups, anyMapLookup(row))
		}
	case []any:
		for _, item := range rows {
			lookups = append(lookups, itemLookup(item))
		}
	default:
		return "", &types.Error{
			Kind: types.KindType,
			Op:   fmt.Sprintf("expected a sequence of rows, got %T", v),
		}
	}

	blocks := make([]string, len(lookups))
	for i, lookup := range lookups {
		blocks[i] = formatBlock(i, lookup, keys)
	}
	return strings.Join(blocks, "\n"), nil
}

// formatBlock renders one header line and its value lines.
func formatBlock(index int, lookup func(string) string, keys []string) string {
	var b strings.Builder

	b.WriteString(BlockPrefix)
	b.WriteString(strconv.Itoa(index))
	b.WriteString(":")

	for _, key := range keys {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(QuoteValue(lookup(key)))
	}

	return b.String()
}

// QuoteValue normalises a raw cell value and returns it as a double-quoted
// YAML scalar.
func QuoteValue(raw string) string {
	value := NormalizeValue(raw)

	// Backslashes first, so the quote escapes are not escaped again.
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)

	return `"` + value + `"`
}

// NormalizeValue trims raw and drops one leading and one trailing quote
// character. It is the text a YAML reader gets back from QuoteValue.
func NormalizeValue(raw string) string {
	value := strings.TrimSpace(raw)

	if strings.HasPrefix(value, `"`) || strings.HasPrefix(value, `'`) {
		value = value[1:]
	}
	if strings.HasSuffix(value, `"`) || strings.HasSuffix(value, `'`) {
		value = value[:len(value)-1]
	}

	return value
}

// =============================================================================
// ROW LOOKUPS
// =============================================================================

func stringMapLookup(row map[string]string) func(string) string {
	return func(key string) string {
		return row[key]
	}
}

func anyMapLookup(row map[string]any) func(string) string {
	return func(key string) string {
		return scalarText(row[key])
	}
}

func itemLookup(item any) func(string) string {
	switch row := item.(type) {
	case types.Row:
		return row.Value
	case map[string]string:
		return stringMapLookup(row)
	case map[string]any:
		return anyMapLookup(row)
	default:
		return func(string) string { return "" }
	}
}

// scalarText converts a decoded scalar to its text. nil renders as "".
func scalarText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
